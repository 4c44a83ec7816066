package usecase

import (
	"context"

	"github.com/aalvaropc/postline/internal/domain"
	"github.com/aalvaropc/postline/internal/ports"
)

// FetchThread loads a post and its comments.
type FetchThread struct {
	api ports.BlogAPI
}

func NewFetchThread(api ports.BlogAPI) *FetchThread {
	return &FetchThread{api: api}
}

// Execute lists posts, picks postID, then lists its comments. The API has no
// single-post endpoint, so an unknown id is reported locally as a ClientError
// wrapping domain.ErrPostNotFound. Failures from either call pass through unchanged.
func (uc *FetchThread) Execute(ctx context.Context, postID string) domain.Result[domain.Thread] {
	posts := uc.api.ListPosts(ctx)
	if posts.Err != nil {
		return domain.FailWith[domain.Thread](posts.Err)
	}

	post, ok := findPost(posts.Data, postID)
	if !ok {
		return domain.Fail[domain.Thread](domain.ClientError, domain.MsgClientError, domain.ErrPostNotFound)
	}

	comments := uc.api.ListComments(ctx, postID)
	if comments.Err != nil {
		return domain.FailWith[domain.Thread](comments.Err)
	}

	return domain.Ok(domain.Thread{Post: post, Comments: comments.Data})
}

func findPost(posts []domain.Post, id string) (domain.Post, bool) {
	for _, p := range posts {
		if p.ID() == id {
			return p, true
		}
	}
	return domain.Post{}, false
}

package blogapi

import (
	"encoding/json"

	"github.com/aalvaropc/postline/internal/domain"
	"github.com/aalvaropc/postline/internal/schema"
)

func parsePosts(raw json.RawMessage) domain.Result[[]domain.Post] {
	recs, err := schema.Batch[schema.Post](raw)
	if err != nil {
		return domain.Fail[[]domain.Post](domain.TypeError, domain.MsgMalformedData, err)
	}

	posts := make([]domain.Post, 0, len(recs))
	for _, r := range recs {
		posts = append(posts, domain.NewPost(r.Record()))
	}
	return domain.Ok(posts)
}

func parseComments(raw json.RawMessage) domain.Result[[]domain.Comment] {
	recs, err := schema.Batch[schema.Comment](raw)
	if err != nil {
		return domain.Fail[[]domain.Comment](domain.TypeError, domain.MsgMalformedData, err)
	}

	comments := make([]domain.Comment, 0, len(recs))
	for _, r := range recs {
		comments = append(comments, domain.NewComment(r.Record()))
	}
	return domain.Ok(comments)
}

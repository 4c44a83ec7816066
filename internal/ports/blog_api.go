package ports

import (
	"context"

	"github.com/aalvaropc/postline/internal/domain"
)

// BlogAPI lists posts and comments from a remote blog.
type BlogAPI interface {
	ListPosts(ctx context.Context) domain.Result[[]domain.Post]
	ListComments(ctx context.Context, postID string) domain.Result[[]domain.Comment]
}

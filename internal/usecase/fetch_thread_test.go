package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/aalvaropc/postline/internal/domain"
)

// stubAPI returns fixed results and records comment lookups.
type stubAPI struct {
	posts    domain.Result[[]domain.Post]
	comments domain.Result[[]domain.Comment]
	asked    []string
}

func (s *stubAPI) ListPosts(_ context.Context) domain.Result[[]domain.Post] {
	return s.posts
}

func (s *stubAPI) ListComments(_ context.Context, postID string) domain.Result[[]domain.Comment] {
	s.asked = append(s.asked, postID)
	return s.comments
}

func post(id string) domain.Post {
	return domain.NewPost(domain.PostRecord{ID: id, CreatedAt: "2024-01-01T00:00:00Z", Content: "c", Author: "a"})
}

func comment(id, postID string) domain.Comment {
	return domain.NewComment(domain.CommentRecord{ID: id, PostID: postID, CreatedAt: "2024-01-01T00:00:00Z", Content: "c", Author: "a"})
}

func TestFetchThread_OK(t *testing.T) {
	api := &stubAPI{
		posts:    domain.Ok([]domain.Post{post("a"), post("b")}),
		comments: domain.Ok([]domain.Comment{comment("c1", "b")}),
	}

	res := NewFetchThread(api).Execute(context.Background(), "b")

	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Data.Post.ID() != "b" {
		t.Fatalf("expected post b, got %s", res.Data.Post.ID())
	}
	if len(res.Data.Comments) != 1 || res.Data.Comments[0].ID() != "c1" {
		t.Fatalf("unexpected comments: %+v", res.Data.Comments)
	}
	if len(api.asked) != 1 || api.asked[0] != "b" {
		t.Fatalf("expected one comment lookup for b, got %v", api.asked)
	}
}

func TestFetchThread_PostsFailurePassesThrough(t *testing.T) {
	api := &stubAPI{posts: domain.Fail[[]domain.Post](domain.ServerError, domain.MsgServerError, nil)}

	res := NewFetchThread(api).Execute(context.Background(), "a")

	if res.ErrorType() != domain.ServerError {
		t.Fatalf("expected ServerError, got %q", res.ErrorType())
	}
	if len(api.asked) != 0 {
		t.Fatalf("expected no comment lookup, got %v", api.asked)
	}
}

func TestFetchThread_UnknownPost(t *testing.T) {
	api := &stubAPI{posts: domain.Ok([]domain.Post{post("a")})}

	res := NewFetchThread(api).Execute(context.Background(), "zzz")

	if res.ErrorType() != domain.ClientError {
		t.Fatalf("expected ClientError, got %q", res.ErrorType())
	}
	if !errors.Is(res.Err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound cause, got %v", res.Err)
	}
}

func TestFetchThread_CommentsFailurePassesThrough(t *testing.T) {
	api := &stubAPI{
		posts:    domain.Ok([]domain.Post{post("a")}),
		comments: domain.Fail[[]domain.Comment](domain.TypeError, domain.MsgMalformedData, nil),
	}

	res := NewFetchThread(api).Execute(context.Background(), "a")

	if res.ErrorType() != domain.TypeError {
		t.Fatalf("expected TypeError, got %q", res.ErrorType())
	}
	if res.Err.Message != domain.MsgMalformedData {
		t.Fatalf("expected message to pass through, got %q", res.Err.Message)
	}
}

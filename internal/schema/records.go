package schema

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aalvaropc/postline/internal/domain"
)

// utcDatetime is the ISO-8601 profile accepted for createdAt: UTC with a
// literal Z, optional fractional seconds, no numeric offset.
var utcDatetime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?Z$`)

const utcDatetimeHint = "YYYY-MM-DDTHH:MM:SS[.fff]Z"

func isUTCDatetime(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !utcDatetime.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.RFC3339Nano, s)
	return err == nil
}

// Post is the constraint set for a post on the wire.
type Post struct {
	ID        *string `json:"id" validate:"required"`
	CreatedAt *string `json:"createdAt" validate:"required,utcdatetime"`
	Content   *string `json:"content" validate:"required"`
	Author    *string `json:"author" validate:"required"`
}

// Record converts a validated Post into its domain record.
func (p Post) Record() domain.PostRecord {
	return domain.PostRecord{
		ID:        deref(p.ID),
		CreatedAt: deref(p.CreatedAt),
		Content:   deref(p.Content),
		Author:    deref(p.Author),
	}
}

// Comment is the constraint set for a comment on the wire.
type Comment struct {
	ID        *string `json:"id" validate:"required"`
	PostID    *string `json:"postId" validate:"required"`
	CreatedAt *string `json:"createdAt" validate:"required,utcdatetime"`
	Content   *string `json:"content" validate:"required"`
	Author    *string `json:"author" validate:"required"`
}

// Record converts a validated Comment into its domain record.
func (c Comment) Record() domain.CommentRecord {
	return domain.CommentRecord{
		ID:        deref(c.ID),
		PostID:    deref(c.PostID),
		CreatedAt: deref(c.CreatedAt),
		Content:   deref(c.Content),
		Author:    deref(c.Author),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package domain

import "time"

// CommentRecord is the validated wire shape of a comment.
type CommentRecord struct {
	ID        string
	PostID    string
	CreatedAt string
	Content   string
	Author    string
}

// Comment represents a comment on a blog post.
type Comment struct {
	id        string
	postID    string
	createdAt time.Time
	content   string
	author    string
}

// NewComment builds a Comment from a record that already passed schema validation.
func NewComment(r CommentRecord) Comment {
	return Comment{
		id:        r.ID,
		postID:    r.PostID,
		createdAt: parseTimestamp(r.CreatedAt),
		content:   r.Content,
		author:    r.Author,
	}
}

func (c Comment) ID() string           { return c.id }
func (c Comment) PostID() string       { return c.postID }
func (c Comment) CreatedAt() time.Time { return c.createdAt }
func (c Comment) Content() string      { return c.content }
func (c Comment) Author() string       { return c.author }

// Thread is a post together with its comments.
type Thread struct {
	Post     Post
	Comments []Comment
}

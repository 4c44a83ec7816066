package domain

import "time"

// PostRecord is the validated wire shape of a post.
type PostRecord struct {
	ID        string
	CreatedAt string
	Content   string
	Author    string
}

// Post represents a blog post and its content.
type Post struct {
	id        string
	createdAt time.Time
	content   string
	author    string
}

// NewPost builds a Post from a record that already passed schema validation.
// CreatedAt is expected to be RFC 3339 in UTC; an unparsable value yields the zero time.
func NewPost(r PostRecord) Post {
	return Post{
		id:        r.ID,
		createdAt: parseTimestamp(r.CreatedAt),
		content:   r.Content,
		author:    r.Author,
	}
}

func (p Post) ID() string           { return p.id }
func (p Post) CreatedAt() time.Time { return p.createdAt }
func (p Post) Content() string      { return p.content }
func (p Post) Author() string       { return p.author }

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

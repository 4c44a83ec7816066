package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/postline/internal/domain"
	"github.com/aalvaropc/postline/internal/usecase/query"
)

var (
	headStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

type postView struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
}

type commentView struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
}

type threadView struct {
	Post     postView      `json:"post"`
	Comments []commentView `json:"comments"`
}

func toPostViews(in []domain.Post) []postView {
	out := make([]postView, 0, len(in))
	for _, p := range in {
		out = append(out, postView{ID: p.ID(), CreatedAt: p.CreatedAt(), Content: p.Content(), Author: p.Author()})
	}
	return out
}

func toCommentViews(in []domain.Comment) []commentView {
	out := make([]commentView, 0, len(in))
	for _, c := range in {
		out = append(out, commentView{ID: c.ID(), PostID: c.PostID(), CreatedAt: c.CreatedAt(), Content: c.Content(), Author: c.Author()})
	}
	return out
}

func toThreadView(t domain.Thread) threadView {
	p := toPostViews([]domain.Post{t.Post})[0]
	return threadView{Post: p, Comments: toCommentViews(t.Comments)}
}

// outputOpts selects how a successful result is written.
type outputOpts struct {
	format string
	query  string
}

// render writes v as JSON, a JSONPath projection of it, or via pretty.
func render(w io.Writer, v any, opts outputOpts, pretty func(io.Writer)) error {
	if strings.TrimSpace(opts.query) != "" {
		val, err := query.ApplyValue(v, opts.query)
		if err != nil {
			return err
		}
		return writeJSON(w, val)
	}

	switch opts.format {
	case "json":
		return writeJSON(w, v)
	case "pretty", "":
		pretty(w)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", opts.format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPrettyPosts(w io.Writer, posts []postView) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts.")
		return
	}
	for _, p := range posts {
		fmt.Fprintf(w, "%s  %s\n", headStyle.Render(p.ID), faintStyle.Render(p.Author+" · "+p.CreatedAt.Format(time.RFC3339)))
		fmt.Fprintf(w, "  %s\n\n", p.Content)
	}
}

func printPrettyComments(w io.Writer, comments []commentView) {
	if len(comments) == 0 {
		fmt.Fprintln(w, "No comments.")
		return
	}
	for _, c := range comments {
		fmt.Fprintf(w, "- %s %s\n", headStyle.Render(c.Author), faintStyle.Render(c.CreatedAt.Format(time.RFC3339)+" #"+c.ID))
		fmt.Fprintf(w, "  %s\n", c.Content)
	}
}

func printPrettyThread(w io.Writer, t threadView) {
	printPrettyPosts(w, []postView{t.Post})
	fmt.Fprintf(w, "Comments (%d):\n", len(t.Comments))
	printPrettyComments(w, t.Comments)
}

// resultError turns a failed Result into a command error that names the
// error type. The cause is shown only with --debug.
type resultError struct {
	err     *domain.Error
	verbose bool
}

func (e *resultError) Error() string {
	if e.verbose {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.err.Type, e.err.Message)
}

func (e *resultError) Unwrap() error { return e.err }

func failure(err *domain.Error, verbose bool) error {
	return &resultError{err: err, verbose: verbose}
}

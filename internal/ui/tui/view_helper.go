package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aalvaropc/postline/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// oneLine collapses whitespace so multi-line content fits a list row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown date"
	}
	return t.UTC().Format("2006-01-02 15:04 MST")
}

func renderComments(th Theme, comments []domain.Comment, width int) string {
	if len(comments) == 0 {
		return th.Subtitle.Render("No comments yet.")
	}
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	for i, c := range comments {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(th.Author.Render(c.Author()))
		b.WriteString("  ")
		b.WriteString(th.Subtitle.Render(formatTime(c.CreatedAt())))
		b.WriteString("\n")
		b.WriteString(clampString(oneLine(c.Content()), width*3))
	}
	return b.String()
}

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/postline/internal/domain"
	"github.com/aalvaropc/postline/internal/ports"
)

// loadTimeout bounds a single fetch started from the UI.
const loadTimeout = time.Minute

func cmdLoadPosts(api ports.BlogAPI) tea.Cmd {
	return func() tea.Msg {
		if api == nil {
			return postsLoadedMsg{res: domain.Fail[[]domain.Post](domain.RequestError, domain.MsgRequestFailed, errNoAPI)}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		return postsLoadedMsg{res: api.ListPosts(ctx)}
	}
}

func cmdLoadComments(api ports.BlogAPI, postID string) tea.Cmd {
	return func() tea.Msg {
		if api == nil {
			return commentsLoadedMsg{postID: postID, res: domain.Fail[[]domain.Comment](domain.RequestError, domain.MsgRequestFailed, errNoAPI)}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		return commentsLoadedMsg{postID: postID, res: api.ListComments(ctx, postID)}
	}
}

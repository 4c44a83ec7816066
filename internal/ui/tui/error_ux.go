package tui

import (
	"errors"

	"github.com/aalvaropc/postline/internal/domain"
)

var errNoAPI = errors.New("API client is nil")

// userMessage picks what to show for a failed load. It branches on the
// error type only; the message text of the error is never inspected.
func userMessage(err *domain.Error) string {
	if err == nil {
		return ""
	}

	switch err.Type {
	case domain.RequestError:
		return "Could not reach the blog API (check the base URL or your connection)"
	case domain.ServerError:
		return "The blog API is having trouble right now (server error)"
	case domain.ClientError:
		if errors.Is(err, domain.ErrPostNotFound) {
			return "Post not found"
		}
		return "The blog API rejected the request (not found or not allowed)"
	case domain.TypeError:
		return "The blog API sent data postline could not understand"
	default:
		return "Unexpected error (see logs)"
	}
}

package ports

import (
	"context"

	"github.com/aalvaropc/postline/internal/domain"
)

// Transport issues a GET and returns status + body, or an error when the
// exchange itself failed (DNS, refused connection, broken body read).
type Transport interface {
	Get(ctx context.Context, url string) (domain.RawResponse, error)
}

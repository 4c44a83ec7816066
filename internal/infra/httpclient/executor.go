package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aalvaropc/postline/internal/domain"
	"github.com/aalvaropc/postline/internal/ports"
)

const defaultMaxBodyBytes = 8 << 20 // 8MB

// Executor performs GET requests and reads the full body.
type Executor struct {
	client       *http.Client
	timeout      time.Duration
	maxBodyBytes int64
}

// ExecutorOption allows configuring an Executor.
type ExecutorOption func(*Executor)

// WithTimeout sets the default timeout applied to requests.
// A deadline already on the caller's context still wins if it is earlier.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) { e.timeout = timeout }
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

// WithMaxBodyBytes caps how much of a response body is read.
// Bodies over the cap fail the exchange rather than being truncated.
func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *Executor) { e.maxBodyBytes = n }
}

// NewExecutor builds an Executor with a default client and timeout.
func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := DefaultConfig()
	e := &Executor{
		client:       New(cfg),
		timeout:      cfg.Timeout,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.Transport = (*Executor)(nil)

// Get issues a GET to url. An error means the exchange itself failed; any
// HTTP status, including 4xx/5xx, comes back as a RawResponse.
func (e *Executor) Get(ctx context.Context, url string) (domain.RawResponse, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.RawResponse{}, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return domain.RawResponse{}, err
	}
	defer resp.Body.Close()

	body, err := readBounded(resp.Body, e.maxBodyBytes)
	if err != nil {
		return domain.RawResponse{Status: resp.StatusCode}, err
	}

	return domain.RawResponse{
		Status: resp.StatusCode,
		Body:   body,
	}, nil
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}
	b, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > maxBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBytes)
	}
	return b, nil
}

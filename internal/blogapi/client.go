// Package blogapi is the client for the remote blog API.
//
// Every operation goes through one pipeline: GET, classify the status,
// parse JSON, validate against the entity's constraint set, map to domain
// entities. Each call returns a domain.Result; nothing is returned as a bare
// error and no failure panics out of an operation.
package blogapi

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aalvaropc/postline/internal/domain"
	"github.com/aalvaropc/postline/internal/infra/httpclient"
	"github.com/aalvaropc/postline/internal/ports"
)

const tracerName = "github.com/aalvaropc/postline/internal/blogapi"

// Client lists posts and comments. It holds no per-call state and is safe
// for concurrent use.
type Client struct {
	baseURL   string
	transport ports.Transport
	log       *slog.Logger
	tracer    trace.Tracer
}

type Option func(*Client)

// WithTransport replaces the default HTTP executor.
func WithTransport(t ports.Transport) Option {
	return func(c *Client) { c.transport = t }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// New builds a Client for baseURL. An empty baseURL falls back to
// domain.DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = domain.DefaultBaseURL
	}

	c := &Client{baseURL: base}
	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = httpclient.NewExecutor()
	}
	if c.log == nil {
		c.log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	return c
}

var _ ports.BlogAPI = (*Client)(nil)

func (c *Client) BaseURL() string { return c.baseURL }

// ListPosts fetches GET {base}/posts.
func (c *Client) ListPosts(ctx context.Context) domain.Result[[]domain.Post] {
	ctx, span := c.tracer.Start(ctx, "blogapi.ListPosts")
	defer span.End()

	res := execute(ctx, c.transport, c.log, c.postsURL(), parsePosts)
	recordOutcome(span, res.Err)
	return res
}

// ListComments fetches GET {base}/posts/{postID}/comments. postID is sent as
// given apart from path escaping; an unknown id is for the server to reject.
func (c *Client) ListComments(ctx context.Context, postID string) domain.Result[[]domain.Comment] {
	ctx, span := c.tracer.Start(ctx, "blogapi.ListComments",
		trace.WithAttributes(attribute.String("postline.post_id", postID)),
	)
	defer span.End()

	res := execute(ctx, c.transport, c.log, c.commentsURL(postID), parseComments)
	recordOutcome(span, res.Err)
	return res
}

func (c *Client) postsURL() string {
	return c.baseURL + "/posts"
}

func (c *Client) commentsURL(postID string) string {
	return c.baseURL + "/posts/" + url.PathEscape(postID) + "/comments"
}

func recordOutcome(span trace.Span, err *domain.Error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.SetAttributes(attribute.String("postline.error_type", string(err.Type)))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Message)
}

package blogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/postline/internal/domain"
	"github.com/aalvaropc/postline/internal/ports"
)

// execute runs the shared pipeline for one call:
// request -> classify status -> parse JSON -> hand over to parse.
// parse receives a syntactically valid JSON body.
// The first failing step decides the Result.
func execute[T any](ctx context.Context, tr ports.Transport, log *slog.Logger, url string, parse func(json.RawMessage) domain.Result[T]) domain.Result[T] {
	callID := uuid.NewString()
	log = log.With("call_id", callID, "url", url)
	log.Debug("blogapi.request")

	start := time.Now()
	resp, err := get(ctx, tr, url)
	latency := time.Since(start)

	res := classify(url, resp, err, parse)

	if res.Err != nil {
		log.Warn("blogapi.result",
			"status", resp.Status,
			"latency_ms", latency.Milliseconds(),
			"error_type", string(res.Err.Type),
			"err", res.Err,
		)
	} else {
		log.Info("blogapi.result",
			"status", resp.Status,
			"latency_ms", latency.Milliseconds(),
			"body_bytes", len(resp.Body),
		)
	}
	return res
}

func classify[T any](url string, resp domain.RawResponse, err error, parse func(json.RawMessage) domain.Result[T]) domain.Result[T] {
	if err != nil {
		return domain.Fail[T](domain.RequestError, domain.MsgRequestFailed, err)
	}

	switch {
	case resp.Status >= 500 && resp.Status < 600:
		return domain.Fail[T](domain.ServerError, domain.MsgServerError, responseError(url, resp))
	case resp.Status >= 400 && resp.Status < 500:
		return domain.Fail[T](domain.ClientError, domain.MsgClientError, responseError(url, resp))
	}

	var raw json.RawMessage
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		return domain.Fail[T](domain.TypeError, domain.MsgInvalidJSON, err)
	}

	return parse(raw)
}

// get calls the transport, turning a panic inside it into a transport error.
func get(ctx context.Context, tr ports.Transport, url string) (resp domain.RawResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = domain.RawResponse{}
			err = fmt.Errorf("transport panic: %v", r)
		}
	}()
	return tr.Get(ctx, url)
}

func responseError(url string, resp domain.RawResponse) *domain.ResponseError {
	return &domain.ResponseError{
		URL:    url,
		Status: resp.Status,
		Body:   resp.Body,
	}
}

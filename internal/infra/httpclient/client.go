package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/aalvaropc/postline/internal/domain"
)

// Config tunes the underlying *http.Client.
type Config struct {
	// Total timeout for one exchange (connect, redirects, reading the body).
	// A context deadline can still override this.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

func DefaultConfig() Config {
	return Config{
		Timeout:             30 * time.Second,
		DialTimeout:         5 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		ResponseHeader:      10 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
	}
}

// FromDomain applies the user-facing timeout on top of the defaults.
// A zero timeout disables the overall deadline.
func FromDomain(cfg domain.Config) Config {
	c := DefaultConfig()
	c.Timeout = cfg.Timeout
	return c
}

// New builds an *http.Client safe for concurrent use by many calls.
func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		DialContext:       dialer.DialContext,
		ForceAttemptHTTP2: true,

		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}

// NewFromDomain wires an Executor from the effective postline config.
func NewFromDomain(cfg domain.Config) *Executor {
	hc := FromDomain(cfg)
	return NewExecutor(WithClient(New(hc)), WithTimeout(hc.Timeout))
}

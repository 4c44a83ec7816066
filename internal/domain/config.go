package domain

import "time"

// Config is the effective postline configuration after defaults, postline.yaml,
// environment, and flags have been applied.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Format  string
	Debug   bool
}

const DefaultBaseURL = "https://example.com"

// DefaultConfig provides sane defaults if postline.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
		Format:  "pretty",
	}
}

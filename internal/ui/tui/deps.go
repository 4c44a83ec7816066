package tui

import (
	"log/slog"

	"github.com/aalvaropc/postline/internal/ports"
)

type Deps struct {
	API     ports.BlogAPI
	BaseURL string

	Logger  *slog.Logger
	Debug   bool
	LogPath string // shown in the header when Debug is set
}

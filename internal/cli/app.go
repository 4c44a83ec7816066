package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/postline/internal/blogapi"
	"github.com/aalvaropc/postline/internal/domain"
	"github.com/aalvaropc/postline/internal/infra/config"
	"github.com/aalvaropc/postline/internal/infra/httpclient"
	"github.com/aalvaropc/postline/internal/infra/logger"
	"github.com/aalvaropc/postline/internal/ports"
)

type appCtx struct {
	root    string
	cfg     domain.Config
	api     ports.BlogAPI
	logPath string // empty when nothing is written to disk

	cleanup func() error
}

func (a *appCtx) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}

// loadApp resolves config, applies flags, and wires the API client.
// File logging is enabled for the TUI and whenever --debug is set; if an
// explicit --debug cannot open its log, a warning goes to errOut.
func loadApp(g *globalFlags, fileLog bool, errOut io.Writer) (*appCtx, error) {
	cfg, root, err := resolveConfig(g)
	if err != nil {
		return nil, err
	}

	cfg, err = applyFlags(cfg, g)
	if err != nil {
		return nil, err
	}

	app := &appCtx{root: root, cfg: cfg}

	if fileLog || g.debug {
		cleanup, lerr := logger.Setup(logger.Config{Root: root, Debug: g.debug})
		switch {
		case lerr != nil && g.debug:
			fmt.Fprintf(errOut, "warning: debug log disabled: %v\n", lerr)
		case lerr == nil:
			app.cleanup = cleanup
			if logger.IsReady() == nil {
				app.logPath = logger.Path()
			}
		}
	}

	app.api = blogapi.New(cfg.BaseURL,
		blogapi.WithTransport(httpclient.NewFromDomain(cfg)),
		blogapi.WithLogger(logger.L()),
	)
	return app, nil
}

func resolveConfig(g *globalFlags) (domain.Config, string, error) {
	loader := config.NewLoader()

	if p := strings.TrimSpace(g.configPath); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return domain.Config{}, "", fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := loader.LoadFile(abs)
		return cfg, filepath.Dir(abs), err
	}

	wd, err := os.Getwd()
	if err != nil {
		return domain.Config{}, "", fmt.Errorf("get working directory: %w", err)
	}
	return config.Resolve(wd, config.NewFinder(), loader)
}

func applyFlags(cfg domain.Config, g *globalFlags) (domain.Config, error) {
	if s := strings.TrimSpace(g.baseURL); s != "" {
		cfg.BaseURL = s
	}
	if s := strings.TrimSpace(g.timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d < 0 {
			return cfg, &domain.OpError{
				Op:   "cli.flags",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("invalid --timeout %q", s),
			}
		}
		cfg.Timeout = d
	}
	cfg.Debug = g.debug
	return cfg, nil
}

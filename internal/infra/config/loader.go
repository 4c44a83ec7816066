package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/nasermirzaei89/env"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/postline/internal/domain"
	"github.com/aalvaropc/postline/internal/ports"
)

// Environment variables consulted after postline.yaml and .env.
const (
	EnvBaseURL = "POSTLINE_BASE_URL"
	EnvTimeout = "POSTLINE_TIMEOUT"
	EnvFormat  = "POSTLINE_FORMAT"
)

// Loader reads postline.yaml from a root and layers the environment on top.
type Loader struct {
	ConfigFile string // defaults to "postline.yaml"
	DotEnvFile string // defaults to ".env"; optional
}

func NewLoader() *Loader {
	return &Loader{ConfigFile: DefaultFileName, DotEnvFile: ".env"}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load reads <root>/postline.yaml and applies environment overrides.
func (l *Loader) Load(root string) (domain.Config, error) {
	return l.LoadFile(filepath.Join(root, l.ConfigFile))
}

// LoadFile reads an explicit config file and applies environment overrides.
func (l *Loader) LoadFile(path string) (domain.Config, error) {
	cfg, err := readFile(path, domain.DefaultConfig())
	if err != nil {
		return cfg, err
	}
	if err := l.loadDotEnv(filepath.Dir(path)); err != nil {
		return cfg, err
	}
	return applyEnv(cfg)
}

// Defaults returns the built-in config with .env from dir and the
// environment applied, for when no postline.yaml exists.
func (l *Loader) Defaults(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if err := l.loadDotEnv(dir); err != nil {
		return cfg, err
	}
	return applyEnv(cfg)
}

// Resolve finds postline.yaml upward from startDir and loads it. Without a
// config file it falls back to Defaults. It returns the config root.
func Resolve(startDir string, finder ports.ConfigLocator, loader *Loader) (domain.Config, string, error) {
	root, err := finder.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			cfg, derr := loader.Defaults(startDir)
			return cfg, startDir, derr
		}
		return domain.DefaultConfig(), "", err
	}

	cfg, err := loader.Load(root)
	return cfg, root, err
}

type yamlConfig struct {
	Postline struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
		Format  string `yaml:"format"`
	} `yaml:"postline"`
}

func readFile(path string, cfg domain.Config) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if s := strings.TrimSpace(y.Postline.BaseURL); s != "" {
		cfg.BaseURL = s
	}
	if s := strings.TrimSpace(y.Postline.Timeout); s != "" {
		d, err := parseTimeout(s)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		cfg.Timeout = d
	}
	if s := strings.TrimSpace(y.Postline.Format); s != "" {
		cfg.Format = s
	}

	return cfg, nil
}

func (l *Loader) loadDotEnv(dir string) error {
	if l.DotEnvFile == "" {
		return nil
	}
	path := filepath.Join(dir, l.DotEnvFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return &domain.OpError{Op: "config.dotenv", Kind: domain.KindExecution, Path: path, Err: err}
	}

	// godotenv.Load never overrides variables already set in the process.
	if err := godotenv.Load(path); err != nil {
		return &domain.OpError{Op: "config.dotenv", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}
	return nil
}

func applyEnv(cfg domain.Config) (domain.Config, error) {
	cfg.BaseURL = env.GetString(EnvBaseURL, cfg.BaseURL)
	cfg.Format = env.GetString(EnvFormat, cfg.Format)

	if s := env.GetString(EnvTimeout, ""); s != "" {
		d, err := parseTimeout(s)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "config.env",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("%s: %w", EnvTimeout, err),
			}
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout must not be negative, got %s", s)
	}
	return d, nil
}

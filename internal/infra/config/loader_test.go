package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aalvaropc/postline/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func unsetOnCleanup(t *testing.T, keys ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, k := range keys {
			_ = os.Unsetenv(k)
		}
	})
}

func TestLoad_AppliesDefaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "postline.yaml"), "postline:\n  base_url: https://blog.test\n")

	cfg, err := NewLoader().Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.BaseURL != "https://blog.test" {
		t.Fatalf("expected base_url from file, got=%s", cfg.BaseURL)
	}
	if cfg.Timeout != domain.DefaultConfig().Timeout {
		t.Fatalf("expected default timeout, got=%s", cfg.Timeout)
	}
	if cfg.Format != "pretty" {
		t.Fatalf("expected default format, got=%s", cfg.Format)
	}
}

func TestLoad_FullFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "postline.yaml"), "postline:\n  base_url: https://blog.test\n  timeout: 5s\n  format: json\n")

	cfg, err := NewLoader().Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("expected 5s, got=%s", cfg.Timeout)
	}
	if cfg.Format != "json" {
		t.Fatalf("expected json, got=%s", cfg.Format)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "postline.yaml"), "postline: [\n")

	_, err := NewLoader().Load(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "postline.yaml"), "postline:\n  timeout: soon\n")

	_, err := NewLoader().Load(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
	if !errors.Is(err, domain.ErrNotFound) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected both ErrNotFound and the fs cause, got: %v", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "postline.yaml"), "postline:\n  base_url: https://file.test\n  timeout: 5s\n")
	t.Setenv(EnvBaseURL, "https://env.test")
	t.Setenv(EnvTimeout, "250ms")

	cfg, err := NewLoader().Load(root)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.BaseURL != "https://env.test" {
		t.Fatalf("expected env base url, got=%s", cfg.BaseURL)
	}
	if cfg.Timeout != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got=%s", cfg.Timeout)
	}
}

func TestLoad_InvalidEnvTimeout(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "postline.yaml"), "")
	t.Setenv(EnvTimeout, "-1s")

	_, err := NewLoader().Load(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected errors.Is(err, ErrInvalidConfig), got: %v", err)
	}
}

func TestDefaults_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "POSTLINE_FORMAT=json\n")
	unsetOnCleanup(t, EnvFormat)

	cfg, err := NewLoader().Defaults(dir)
	if err != nil {
		t.Fatalf("Defaults error: %v", err)
	}
	if cfg.Format != "json" {
		t.Fatalf("expected format from .env, got=%s", cfg.Format)
	}
	if cfg.BaseURL != domain.DefaultBaseURL {
		t.Fatalf("expected default base url, got=%s", cfg.BaseURL)
	}
}

func TestResolve_WithoutConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg, root, err := Resolve(dir, NewFinder(), NewLoader())
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if root != dir {
		t.Fatalf("expected root=%s, got=%s", dir, root)
	}
	if cfg.BaseURL != domain.DefaultBaseURL {
		t.Fatalf("expected default base url, got=%s", cfg.BaseURL)
	}
}

func TestResolve_FindsConfigUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "sub")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(root, "postline.yaml"), "postline:\n  base_url: https://found.test\n")

	cfg, gotRoot, err := Resolve(nested, NewFinder(), NewLoader())
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if gotRoot != root {
		t.Fatalf("expected root=%s, got=%s", root, gotRoot)
	}
	if cfg.BaseURL != "https://found.test" {
		t.Fatalf("expected base url from file, got=%s", cfg.BaseURL)
	}
}

package ports

import "github.com/aalvaropc/postline/internal/domain"

// ConfigLocator finds a postline config root starting from an arbitrary directory.
type ConfigLocator interface {
	FindRoot(startDir string) (string, error)
}

// ConfigLoader loads the effective configuration rooted at a directory.
type ConfigLoader interface {
	Load(root string) (domain.Config, error)
}

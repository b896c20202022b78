package config

import (
	"context"
)

// Loader is the interface for a format-specific catalog loader.
type Loader interface {
	// Extensions lists the file extensions (with leading dot) handled.
	Extensions() []string

	// Load parses a single document into a partial model. name is used for
	// diagnostics only.
	Load(ctx context.Context, name string, src []byte) (*Model, error)
}

package catalog

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/specialistvlad/guardian/internal/config"
	"github.com/specialistvlad/guardian/internal/hcl_adapter"
)

//go:embed dishes/*.hcl
var curated embed.FS

// Curated exposes the embedded dataset rooted at the dishes directory.
func Curated() fs.FS {
	sub, err := fs.Sub(curated, "dishes")
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is unreadable: %v", err))
	}
	return sub
}

// CuratedModel parses the embedded dataset.
func CuratedModel(ctx context.Context) (*config.Model, error) {
	return config.LoadFS(ctx, Curated(), []config.Loader{hcl_adapter.NewLoader()}, ".")
}

// LoadCurated builds a store from the embedded dataset alone.
func LoadCurated(ctx context.Context) (*Store, error) {
	model, err := CuratedModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load curated catalog: %w", err)
	}
	return Load(ctx, model)
}

package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/specialistvlad/guardian/internal/catalog"
	"github.com/specialistvlad/guardian/internal/config"
	"github.com/specialistvlad/guardian/internal/ctxlog"
	"github.com/specialistvlad/guardian/internal/hcl_adapter"
	"github.com/specialistvlad/guardian/internal/yaml_adapter"
)

// loaders returns every catalog format the application understands.
func loaders() []config.Loader {
	return []config.Loader{hcl_adapter.NewLoader(), yaml_adapter.NewLoader()}
}

// loadModel reads the embedded dataset, unless skipped, followed by every
// path in order, and merges them into one model.
func loadModel(ctx context.Context, curated bool, paths []string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	var models []*config.Model

	if curated {
		m, err := catalog.CuratedModel(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load curated catalog: %w", err)
		}
		models = append(models, m)
		logger.Debug("Curated catalog loaded.", "dishes", len(m.Dishes))
	}

	for _, p := range paths {
		fsys, root, err := pathFS(p)
		if err != nil {
			return nil, err
		}
		m, err := config.LoadFS(ctx, fsys, loaders(), root)
		if err != nil {
			return nil, err
		}
		if len(m.Dishes) == 0 && m.Scoring == nil {
			logger.Warn("Catalog path contains no catalog entries.", "path", p)
		}
		models = append(models, m)
	}
	return config.Merge(models...)
}

// pathFS roots a file system at p, or at its parent directory when p is a
// single file.
func pathFS(p string) (fs.FS, string, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, "", fmt.Errorf("catalog path %s: %w", p, err)
	}
	if info.IsDir() {
		return os.DirFS(p), ".", nil
	}
	return os.DirFS(filepath.Dir(p)), filepath.Base(p), nil
}

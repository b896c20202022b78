package config

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/specialistvlad/guardian/internal/ctxlog"
	"github.com/specialistvlad/guardian/internal/fsutil"
)

// Merge combines partial models in order. Dish ids must be unique across all
// inputs; scoring weights from later models override earlier ones per kind.
func Merge(models ...*Model) (*Model, error) {
	out := &Model{}
	seen := make(map[string]string)
	for _, m := range models {
		if m == nil {
			continue
		}
		for _, d := range m.Dishes {
			if prev, dup := seen[d.ID]; dup {
				return nil, fmt.Errorf("dish %q defined in both %s and %s", d.ID, prev, d.Source)
			}
			seen[d.ID] = d.Source
			out.Dishes = append(out.Dishes, d)
		}
		if m.Scoring != nil {
			if out.Scoring == nil {
				out.Scoring = &Scoring{Weights: make(map[string]int)}
			}
			for k, v := range m.Scoring.Weights {
				out.Scoring.Weights[k] = v
			}
		}
	}
	return out, nil
}

// LoadFS discovers catalog files under the given roots of fsys, parses each
// one with the loader registered for its extension and merges the results.
// Files are visited in lexical order so the merged model is deterministic.
func LoadFS(ctx context.Context, fsys fs.FS, loaders []Loader, roots ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	byExt := make(map[string]Loader)
	var exts []string
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			byExt[ext] = l
			exts = append(exts, ext)
		}
	}

	var files []string
	for _, root := range roots {
		found, err := fsutil.FindFiles(fsys, root, exts...)
		if err != nil {
			return nil, fmt.Errorf("error discovering catalog files under %s: %w", root, err)
		}
		for _, f := range found {
			if !slices.Contains(files, f) {
				files = append(files, f)
			}
		}
	}
	logger.Debug("Discovered catalog files.", "count", len(files))

	partials := make([]*Model, 0, len(files))
	for _, file := range files {
		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", file, err)
		}
		loader := byExt[path.Ext(file)]
		m, err := loader.Load(ctx, file, src)
		if err != nil {
			return nil, err
		}
		logger.Debug("Catalog file loaded.", "file", file, "dishes", len(m.Dishes), "has_scoring", m.Scoring != nil)
		partials = append(partials, m)
	}
	return Merge(partials...)
}

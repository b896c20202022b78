// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path"
	"slices"
)

// FindFiles recursively searches root within fsys for files whose extension
// is one of exts. root may also name a single file, which is returned when
// its extension matches. Results follow fs.WalkDir's lexical order.
func FindFiles(fsys fs.FS, root string, exts ...string) ([]string, error) {
	if len(exts) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && slices.Contains(exts, path.Ext(p)) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

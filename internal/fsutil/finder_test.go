package fsutil

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"cat/z.hcl":      {},
		"cat/a.yaml":     {},
		"cat/sub/b.yml":  {},
		"cat/readme.md":  {},
		"single.hcl":     {},
		"other/skip.hcl": {},
	}

	files, err := FindFiles(fsys, "cat", ".hcl", ".yaml", ".yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat/a.yaml", "cat/sub/b.yml", "cat/z.hcl"}, files)

	files, err = FindFiles(fsys, "single.hcl", ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{"single.hcl"}, files)

	_, err = FindFiles(fsys, "missing", ".hcl")
	assert.Error(t, err)

	assert.Panics(t, func() { _, _ = FindFiles(fsys, "cat") })
}

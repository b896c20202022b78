package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	t.Parallel()
	root := WriteFiles(t, map[string]string{
		"a.json":        "{}",
		"nested/b.hcl":  `dish "b" {}`,
		"nested/deep/c": "c",
	})
	data, err := os.ReadFile(filepath.Join(root, "nested", "b.hcl"))
	require.NoError(t, err)
	assert.Equal(t, `dish "b" {}`, string(data))
	assert.FileExists(t, filepath.Join(root, "nested", "deep", "c"))
}

func TestLogSink_ConcurrentWrites(t *testing.T) {
	t.Parallel()
	var sink LogSink
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = sink.Write([]byte("line\n"))
		}()
	}
	wg.Wait()
	assert.Len(t, sink.Lines(), 50)
}

func TestLogSink_Lines(t *testing.T) {
	t.Parallel()
	var sink LogSink
	assert.Nil(t, sink.Lines())
	_, _ = sink.Write([]byte("a\nb\npart"))
	assert.Equal(t, []string{"a", "b"}, sink.Lines())
}

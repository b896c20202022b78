package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFiles creates a temporary directory holding the given files, keyed by
// slash-separated relative path, and returns its root.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

// BadCheesecake is the flawed candidate used throughout the tests: no bake,
// and neither eggs nor heavy cream.
const BadCheesecake = `{
	"title": "Agent's Bad Cheesecake",
	"steps": [
		{"step_index": "1.0", "technique": "mixing", "instruction_english": "Mix all ingredients.", "intent": "preparation"},
		{"step_index": "2.0", "technique": "cooling", "instruction_english": "Put in fridge to set.", "intent": "setting"}
	],
	"ingredients": [
		{"name": "cream cheese", "quantity": "1 kg"},
		{"name": "sugar", "quantity": "400g"}
	]
}`

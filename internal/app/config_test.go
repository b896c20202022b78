package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestNewConfig_Validation(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"bad format", Config{Format: "yaml"}, `invalid format "yaml"`},
		{"bad log format", Config{LogFormat: "xml"}, `invalid log-format "xml"`},
		{"bad log level", Config{LogLevel: "loud"}, `invalid log-level "loud"`},
		{"negative workers", Config{Workers: -1}, "workers cannot be negative"},
		{"no catalog at all", Config{NoCurated: true}, "no-curated requires at least one catalog path"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewConfig(tc.cfg)
			assert.EqualError(t, err, tc.wantErr+errSuffix(tc.wantErr))
		})
	}
}

// errSuffix completes the messages that list the accepted values.
func errSuffix(prefix string) string {
	switch prefix {
	case `invalid format "yaml"`, `invalid log-format "xml"`:
		return ": must be 'text' or 'json'"
	case `invalid log-level "loud"`:
		return ": must be 'debug', 'info', 'warn', or 'error'"
	}
	return ""
}

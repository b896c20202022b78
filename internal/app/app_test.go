package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/guardian/internal/evaluator"
	"github.com/specialistvlad/guardian/internal/testutil"
	"github.com/specialistvlad/guardian/internal/verifier"
)

// setupApp creates an App with debug logging captured in a buffer. Set
// GUARDIAN_TEST_LOGS=true to print the logs of every test.
func setupApp(t *testing.T, cfg Config) (*App, *bytes.Buffer) {
	t.Helper()
	cfg.LogLevel = "debug"
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.LogSink{}
	a, err := NewApp(out, logs, validated)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("GUARDIAN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out
}

const extraCatalog = `
dish "toast" {
  title = "Buttered Toast"

  ingredient "bread" {}

  state "toast" {
    technique = "grilling"
  }
}

scoring {
  weights = { missing_step = 50 }
}
`

const extraYAML = `
dishes:
  - id: iced-tea
    states:
      - id: chill
        technique: chilling
scoring:
  weights:
    missing_step: 60
    wrong_order: 1
`

func TestNewApp_CuratedCatalog(t *testing.T) {
	t.Parallel()
	a, _ := setupApp(t, Config{})
	assert.Contains(t, a.Store().ListDishes(), "basque-cheesecake")
	assert.Equal(t, 20, a.Weights().Of(evaluator.MissingStep))
}

func TestNewApp_ExtraCatalogsAndWeightPrecedence(t *testing.T) {
	t.Parallel()
	root := testutil.WriteFiles(t, map[string]string{
		"extra/toast.hcl":   extraCatalog,
		"tea.yaml":          extraYAML,
		"extra/ignored.txt": "not a catalog",
	})

	a, _ := setupApp(t, Config{
		CatalogPaths: []string{filepath.Join(root, "extra"), filepath.Join(root, "tea.yaml")},
		Weights:      []string{"wrong_order=7"},
	})
	ids := a.Store().ListDishes()
	assert.Contains(t, ids, "toast")
	assert.Contains(t, ids, "iced-tea")
	assert.Contains(t, ids, "basque-cheesecake")

	w := a.Weights()
	assert.Equal(t, 60, w.Of(evaluator.MissingStep), "later catalog files override earlier ones")
	assert.Equal(t, 7, w.Of(evaluator.WrongOrder), "flags override catalog files")
	assert.Equal(t, 15, w.Of(evaluator.MissingIngredient))
}

func TestNewApp_StartupErrors(t *testing.T) {
	t.Parallel()
	root := testutil.WriteFiles(t, map[string]string{
		"dup.hcl":     "dish \"basque-cheesecake\" {\n}\n",
		"broken.hcl":  "dish \"x\" {",
		"weights.hcl": "scoring {\n  weights = { burnt = 3 }\n}\n",
	})

	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"duplicate dish", Config{CatalogPaths: []string{filepath.Join(root, "dup.hcl")}}, `dish "basque-cheesecake" defined in both`},
		{"syntax error", Config{CatalogPaths: []string{filepath.Join(root, "broken.hcl")}}, "failed to parse HCL file"},
		{"missing path", Config{CatalogPaths: []string{filepath.Join(root, "nope")}}, "no such file"},
		{"unknown weight in catalog", Config{CatalogPaths: []string{filepath.Join(root, "weights.hcl")}}, `unknown violation kind "burnt"`},
		{"bad weight flag", Config{Weights: []string{"wrong_order"}}, "expected kind=points"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := NewConfig(tc.cfg)
			require.NoError(t, err)
			_, err = NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestApp_Verify(t *testing.T) {
	t.Parallel()
	root := testutil.WriteFiles(t, map[string]string{
		"bad.json":    testutil.BadCheesecake,
		"broken.json": `{"steps": [{"step_index": "x", "technique": "mixing", "intent": "preparation"}]}`,
	})
	metrics := filepath.Join(root, "guardian.prom")
	a, out := setupApp(t, Config{MetricsFile: metrics})

	results, err := a.Verify(context.Background(), "basque-cheesecake", []string{
		filepath.Join(root, "bad.json"),
		filepath.Join(root, "broken.json"),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 20, results[0].Report.Score())
	assert.ErrorIs(t, results[1].Err, verifier.ErrMalformedSubmission)
	assert.Contains(t, out.String(), "score 20/100")
	assert.Contains(t, out.String(), "steps[0].step_index")

	require.NoError(t, a.Close())
	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "guardian_verifications_total")
}

func TestApp_VerifyUnknownDishReadsNothing(t *testing.T) {
	t.Parallel()
	a, out := setupApp(t, Config{})
	_, err := a.Verify(context.Background(), "nonexistent-dish", []string{"/does/not/exist.json"})
	require.ErrorIs(t, err, verifier.ErrUnknownDish)
	assert.Empty(t, out.String())
}

func TestApp_ListDishes(t *testing.T) {
	t.Parallel()
	a, out := setupApp(t, Config{Format: "json"})
	require.NoError(t, a.ListDishes())
	assert.Contains(t, out.String(), `"basque-cheesecake"`)
}

func TestApp_CheckCatalog(t *testing.T) {
	t.Parallel()
	root := testutil.WriteFiles(t, map[string]string{
		"good/toast.hcl": extraCatalog,
		"bad/cycle.yaml": "dishes:\n  - id: loop\n    states:\n      - {id: a, technique: baking, after: [b]}\n      - {id: b, technique: cooling, after: [a]}\n",
	})
	a, out := setupApp(t, Config{})

	require.NoError(t, a.CheckCatalog(context.Background(), []string{filepath.Join(root, "good")}))
	assert.Equal(t, "ok: 1 dishes\n  toast\n", out.String())

	err := a.CheckCatalog(context.Background(), []string{filepath.Join(root, "bad")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := newLogger(&Config{LogLevel: "warn", LogFormat: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
	assert.Contains(t, buf.String(), `"component":"guardian"`)

	buf.Reset()
	newLogger(&Config{LogLevel: "debug"}, &buf).Debug("text handler")
	assert.Contains(t, buf.String(), "msg=\"text handler\"")
}

package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/guardian/internal/catalog"
	"github.com/specialistvlad/guardian/internal/verifier"
)

const badCheesecake = `{"steps": [
	{"step_index": "1.0", "technique": "mixing", "intent": "preparation"},
	{"step_index": "2.0", "technique": "cooling", "intent": "setting"}
], "ingredients": [{"name": "cream cheese"}, {"name": "sugar"}]}`

func results(t *testing.T) []verifier.Result {
	t.Helper()
	store, err := catalog.LoadCurated(context.Background())
	require.NoError(t, err)
	res, err := verifier.New(store).VerifyBatch(context.Background(), []verifier.Request{
		{Name: "bad.json", DishID: "basque-cheesecake", Candidate: []byte(badCheesecake)},
		{Name: "broken.json", DishID: "basque-cheesecake", Candidate: []byte("{")},
	}, 1)
	require.NoError(t, err)
	return res
}

func TestReporter_TextResults(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText, false).Results(results(t)))

	out := buf.String()
	assert.Contains(t, out, "bad.json -> basque-cheesecake\n")
	assert.Contains(t, out, "  score 20/100 (2 missing_ingredient, 1 missing_step, 1 invalid_transition)")
	assert.Contains(t, out, "missing_ingredient")
	assert.Contains(t, out, "ingredient.heavy_cream")
	assert.Contains(t, out, "broken.json -> basque-cheesecake\n  rejected: malformed submission")
	assert.NotContains(t, out, "\x1b[", "colors are disabled")
}

func TestReporter_TextColors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText, true).Results(results(t)[:1]))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestReporter_JSONResults(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON, true).Results(results(t)))

	var decoded []struct {
		Name   string `json:"name"`
		Error  string `json:"error"`
		Report *struct {
			DishID     string `json:"dish_id"`
			Score      int    `json:"score"`
			Violations []struct {
				Kind string `json:"kind"`
			} `json:"violations"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "bad.json", decoded[0].Name)
	require.NotNil(t, decoded[0].Report)
	assert.Equal(t, 20, decoded[0].Report.Score)
	assert.Len(t, decoded[0].Report.Violations, 4)

	assert.Nil(t, decoded[1].Report)
	assert.True(t, strings.HasPrefix(decoded[1].Error, "malformed submission"))
	assert.NotContains(t, buf.String(), "\x1b[", "JSON is never colored")
}

func TestReporter_Dishes(t *testing.T) {
	t.Parallel()
	var text, js bytes.Buffer
	require.NoError(t, New(&text, FormatText, false).Dishes([]string{"a", "b"}))
	assert.Equal(t, "a\nb\n", text.String())

	require.NoError(t, New(&js, FormatJSON, false).Dishes(nil))
	assert.JSONEq(t, `{"dishes": []}`, js.String())

	text.Reset()
	require.NoError(t, New(&text, FormatText, false).Dishes(nil))
	assert.Equal(t, "catalog is empty\n", text.String())
}

func TestReporter_CatalogSummary(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText, false).CatalogSummary([]string{"a"}))
	assert.Equal(t, "ok: 1 dishes\n  a\n", buf.String())
}

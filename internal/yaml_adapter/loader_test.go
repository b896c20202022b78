package yaml_adapter

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/guardian/internal/config"
)

func ptr(f float64) *float64 { return &f }

func TestLoader_Load(t *testing.T) {
	t.Parallel()
	src := `
dishes:
  - id: basque-cheesecake
    title: Basque Burnt Cheesecake
    ingredients:
      - name: eggs
        quantity: "5"
        aliases: [egg]
      - name: salt
        tolerance: pinch
    states:
      - id: mix
        technique: mixing
      - id: bake
        technique: baking
        after: [mix]
        temperature: {min: 200, max: 230, unit: C}
        duration: {max: 60}
scoring:
  weights:
    missing_step: 30
`
	got, err := NewLoader().Load(context.Background(), "cat.yaml", []byte(src))
	require.NoError(t, err)

	want := &config.Model{
		Dishes: []*config.Dish{{
			ID:     "basque-cheesecake",
			Title:  "Basque Burnt Cheesecake",
			Source: "cat.yaml",
			Ingredients: []*config.Ingredient{
				{Name: "eggs", Quantity: "5", Aliases: []string{"egg"}},
				{Name: "salt", Tolerance: "pinch"},
			},
			States: []*config.State{
				{ID: "mix", Technique: "mixing"},
				{
					ID:          "bake",
					Technique:   "baking",
					After:       []string{"mix"},
					Temperature: &config.Range{Min: ptr(200), Max: ptr(230), Unit: "C"},
					Duration:    &config.Range{Max: ptr(60)},
				},
			},
		}},
		Scoring: &config.Scoring{Weights: map[string]int{"missing_step": 30}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_Load_Empty(t *testing.T) {
	t.Parallel()
	m, err := NewLoader().Load(context.Background(), "empty.yml", nil)
	require.NoError(t, err)
	assert.Empty(t, m.Dishes)
	assert.Nil(t, m.Scoring)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"unknown key", "dishes:\n  - id: a\n    colour: red\n", "failed to decode YAML file"},
		{"missing id", "dishes:\n  - title: nameless\n", "dishes[0]: id is required"},
		{"missing technique", "dishes:\n  - id: a\n    states:\n      - id: s\n", "technique is required"},
		{"empty range", "dishes:\n  - id: a\n    states:\n      - id: s\n        technique: baking\n        duration: {unit: min}\n", "duration must set at least one"},
		{"non-integer weight", "scoring:\n  weights:\n    wrong_order: lots\n", "failed to decode YAML file"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewLoader().Load(context.Background(), "bad.yaml", []byte(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoader_Extensions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{".yaml", ".yml"}, NewLoader().Extensions())
}

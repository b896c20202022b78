package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_String(t *testing.T) {
	testCases := []struct {
		name        string
		addr        *Address
		expectedStr string
	}{
		{name: "step", addr: Step(0), expectedStr: "step[0]"},
		{name: "state", addr: State("Bake"), expectedStr: "state.bake"},
		{name: "ingredient", addr: Ingredient("Heavy  Cream"), expectedStr: "ingredient.heavy_cream"},
		{name: "nil address", addr: nil, expectedStr: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStr, tc.addr.String())
		})
	}
}

func TestSlug(t *testing.T) {
	testCases := map[string]string{
		"heavy cream":       "heavy_cream",
		"  Cream Cheese  ":  "cream_cheese",
		"eggs (large)":      "eggs_large",
		"basque-cheesecake": "basque-cheesecake",
		"???":               "_",
		"-":                 "_",
	}
	for in, want := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Slug(in))
		})
	}
}

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTemperatures(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		text string
		want []Measurement
	}{
		{"Bake at 220°C.", []Measurement{{Low: 220, High: 220, Text: "220°C"}}},
		{"Bake at 220 ºc", []Measurement{{Low: 220, High: 220, Text: "220 ºc"}}},
		{"Oven to 180 degrees", []Measurement{{Low: 180, High: 180, Text: "180 degrees"}}},
		{"Oven to 356 degrees Fahrenheit", []Measurement{{Low: 180, High: 180, Text: "356 degrees Fahrenheit"}}},
		{"Heat to 200 Celsius", []Measurement{{Low: 200, High: 200, Text: "200 Celsius"}}},
		{"Roast at 425F", []Measurement{{Low: 218.33333333333334, High: 218.33333333333334, Text: "425F"}}},
		{"Bake at 200-220°C", []Measurement{{Low: 200, High: 220, Text: "200-220°C"}}},
		{"Freeze at -18°C", []Measurement{{Low: -18, High: -18, Text: "-18°C"}}},
		{"Bake 40 minutes", nil},
		{"Add 2 Cups of milk", nil},
		{"Simmer for 2 1/2 hours", nil},
		{"Bake at 160½°C", []Measurement{{Low: 160.5, High: 160.5, Text: "160½°C"}}},
		{"Preheat to 250°C, bake at 220°C", []Measurement{
			{Low: 250, High: 250, Text: "250°C"},
			{Low: 220, High: 220, Text: "220°C"},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			got, errs := ExtractTemperatures(tc.text)
			assert.Empty(t, errs)
			require.Len(t, got, len(tc.want))
			for i := range got {
				assert.InDelta(t, tc.want[i].Low, got[i].Low, 1e-9)
				assert.InDelta(t, tc.want[i].High, got[i].High, 1e-9)
				assert.Equal(t, tc.want[i].Text, got[i].Text)
			}
		})
	}
}

func TestExtractTemperatures_ReversedRange(t *testing.T) {
	t.Parallel()
	got, errs := ExtractTemperatures("Reduce 220 to 180°C")
	assert.Empty(t, got)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "range is reversed")
}

func TestExtractDurations(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		text string
		want []Measurement
	}{
		{"Bake for 45 minutes", []Measurement{{Low: 45, High: 45, Text: "45 minutes"}}},
		{"Rest 10-15 min", []Measurement{{Low: 10, High: 15, Text: "10-15 min"}}},
		{"Proof 2 to 3 hours", []Measurement{{Low: 120, High: 180, Text: "2 to 3 hours"}}},
		{"Simmer 1.5h", []Measurement{{Low: 90, High: 90, Text: "1.5h"}}},
		{"Whisk 90 seconds", []Measurement{{Low: 1.5, High: 1.5, Text: "90 seconds"}}},
		{"Braise 2 hours and 30 minutes", []Measurement{{Low: 150, High: 150, Text: "2 hours and 30 minutes"}}},
		{"Chill overnight", []Measurement{{Low: 480, High: 480, Text: "overnight"}}},
		{"Rest for half an hour", []Measurement{{Low: 30, High: 30, Text: "half an hour"}}},
		{"Simmer covered for 2 1/2 hours at 160°C.", []Measurement{{Low: 150, High: 150, Text: "2 1/2 hours"}}},
		{"Bake for 1/2 hour.", []Measurement{{Low: 30, High: 30, Text: "1/2 hour"}}},
		{"Braise 2½ hours", []Measurement{{Low: 150, High: 150, Text: "2½ hours"}}},
		{"Rest 1 to 1 1/2 hours", []Measurement{{Low: 60, High: 90, Text: "1 to 1 1/2 hours"}}},
		{"Bulk ferment for 4 hours, with a set of folds every 30 minutes", []Measurement{{Low: 240, High: 240, Text: "4 hours"}}},
		{"Stir each 5 min", nil},
		{"Use 200 ml of water in 2 steps", nil},
		{"Bake at 220°C", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			got, errs := ExtractDurations(tc.text)
			assert.Empty(t, errs)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMeasurement_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "176.7", Measurement{Low: 176.6666, High: 176.6666}.String())
	assert.Equal(t, "10-15", Measurement{Low: 10, High: 15}.String())
}

package catalog

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/guardian/internal/config"
	"github.com/specialistvlad/guardian/internal/recipe"
)

// temperatureRange converts a configured range to degrees Celsius.
func temperatureRange(r *config.Range) (*recipe.Range, error) {
	if r == nil {
		return nil, nil
	}
	var conv func(float64) float64
	switch strings.ToLower(strings.TrimSpace(r.Unit)) {
	case "", "c", "celsius":
		conv = func(v float64) float64 { return v }
	case "f", "fahrenheit":
		conv = func(v float64) float64 { return (v - 32) * 5 / 9 }
	default:
		return nil, fmt.Errorf("unsupported temperature unit %q", r.Unit)
	}
	return convertRange(r, conv)
}

// durationRange converts a configured range to minutes.
func durationRange(r *config.Range) (*recipe.Range, error) {
	if r == nil {
		return nil, nil
	}
	var factor float64
	switch strings.ToLower(strings.TrimSpace(r.Unit)) {
	case "", "m", "min", "mins", "minute", "minutes":
		factor = 1
	case "s", "sec", "secs", "second", "seconds":
		factor = 1.0 / 60
	case "h", "hr", "hrs", "hour", "hours":
		factor = 60
	default:
		return nil, fmt.Errorf("unsupported duration unit %q", r.Unit)
	}
	return convertRange(r, func(v float64) float64 { return v * factor })
}

func convertRange(r *config.Range, conv func(float64) float64) (*recipe.Range, error) {
	bounds := recipe.Unbounded
	if r.Min != nil {
		bounds.Min = conv(*r.Min)
	}
	if r.Max != nil {
		bounds.Max = conv(*r.Max)
	}
	out, err := recipe.NewRange(bounds.Min, bounds.Max)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

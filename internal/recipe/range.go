package recipe

import (
	"fmt"
	"math"
	"strconv"
)

// Range is an inclusive numeric interval. An unbounded side is represented
// by an infinity, so a Range with only a minimum still Contains large values.
type Range struct {
	Min float64
	Max float64
}

// Unbounded is the range that contains every finite value.
var Unbounded = Range{Min: math.Inf(-1), Max: math.Inf(1)}

// NewRange validates and builds a range. Pass math.Inf for an open side.
func NewRange(lo, hi float64) (Range, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Range{}, fmt.Errorf("range bounds must be numbers")
	}
	if lo > hi {
		return Range{}, fmt.Errorf("range minimum %s exceeds maximum %s", formatBound(lo), formatBound(hi))
	}
	return Range{Min: lo, Max: hi}, nil
}

// Contains reports whether v lies within the closed interval.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", formatBound(r.Min), formatBound(r.Max))
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsInf(v, 1):
		return "+inf"
	}
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

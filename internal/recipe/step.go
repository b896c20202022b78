package recipe

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/guardian/internal/technique"
)

// StepIndex is the fractional position of a step. Fractions allow a step to
// be inserted between two existing ones ("1.5" between "1.0" and "2.0").
type StepIndex struct {
	value float64
	raw   string
}

// ParseStepIndex parses the textual form of a step index.
func ParseStepIndex(raw string) (StepIndex, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return StepIndex{}, fmt.Errorf("step index is empty")
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return StepIndex{}, fmt.Errorf("step index %q is not numeric", raw)
	}
	return NewStepIndex(v, trimmed)
}

// NewStepIndex builds an index from an already numeric value. raw may be
// empty, in which case the shortest decimal form is used for display.
func NewStepIndex(v float64, raw string) (StepIndex, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return StepIndex{}, fmt.Errorf("step index %v is not a finite number", v)
	}
	if raw == "" {
		raw = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return StepIndex{value: v, raw: raw}, nil
}

// Value returns the numeric index.
func (s StepIndex) Value() float64 { return s.value }

// String returns the index as it was submitted.
func (s StepIndex) String() string { return s.raw }

// Less reports whether s sorts strictly before other.
func (s StepIndex) Less(other StepIndex) bool { return s.value < other.value }

// Step is one node of a candidate recipe.
type Step struct {
	// Position is the zero-based position in the submitted sequence.
	Position    int
	Index       StepIndex
	Technique   technique.Technique
	Instruction string
	Intent      technique.Intent
}

// Label renders the step for human-readable details, e.g. `baking (step 2.0)`.
func (s Step) Label() string {
	return fmt.Sprintf("%s (step %s)", s.Technique, s.Index)
}

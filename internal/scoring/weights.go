package scoring

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/guardian/internal/evaluator"
)

// Weights maps each violation kind to the points it deducts.
type Weights map[evaluator.Kind]int

// DefaultWeights returns the stock weight table.
func DefaultWeights() Weights {
	return Weights{
		evaluator.MissingIngredient:   15,
		evaluator.MissingStep:         20,
		evaluator.WrongOrder:          25,
		evaluator.OutOfRangeParameter: 10,
		evaluator.InvalidTransition:   30,
	}
}

// Override returns a copy of w with the given entries replaced. Keys must be
// known violation kinds and values must not be negative.
func (w Weights) Override(overrides map[string]int) (Weights, error) {
	out := maps.Clone(w)
	if out == nil {
		out = Weights{}
	}
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		kind, err := evaluator.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("invalid weight: %w", err)
		}
		v := overrides[name]
		if v < 0 {
			return nil, fmt.Errorf("invalid weight for %s: must not be negative, got %d", name, v)
		}
		out[kind] = v
	}
	return out, nil
}

// ParseOverrides reads `kind=points` pairs as given on the command line.
func ParseOverrides(pairs []string) (map[string]int, error) {
	out := make(map[string]int, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("invalid weight %q: expected kind=points", p)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		out[strings.TrimSpace(name)] = n
	}
	return out, nil
}

// Of returns the deduction for one kind. Unknown kinds deduct nothing.
func (w Weights) Of(kind evaluator.Kind) int { return w[kind] }

// Score computes 100 minus the summed deductions, clamped to [0, 100].
func (w Weights) Score(violations []evaluator.Violation) int {
	score := 100
	for _, v := range violations {
		score -= w.Of(v.Kind)
		if score <= 0 {
			return 0
		}
	}
	return min(score, 100)
}

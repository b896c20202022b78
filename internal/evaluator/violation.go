package evaluator

import "fmt"

// Kind classifies a violation.
type Kind string

const (
	MissingIngredient   Kind = "missing_ingredient"
	MissingStep         Kind = "missing_step"
	WrongOrder          Kind = "wrong_order"
	OutOfRangeParameter Kind = "out_of_range_parameter"
	InvalidTransition   Kind = "invalid_transition"
)

// Kinds returns every violation kind in evaluation order.
func Kinds() []Kind {
	return []Kind{MissingIngredient, MissingStep, WrongOrder, OutOfRangeParameter, InvalidTransition}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown violation kind %q", s)
}

// Violation is a single deviation from the master recipe. NodeRef is a
// nodeid address such as `step[1]` or `ingredient.eggs`.
type Violation struct {
	Kind    Kind   `json:"kind"`
	NodeRef string `json:"node"`
	Detail  string `json:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s at %s: %s", v.Kind, v.NodeRef, v.Detail)
}

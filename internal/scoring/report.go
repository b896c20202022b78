package scoring

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/specialistvlad/guardian/internal/evaluator"
	"github.com/specialistvlad/guardian/internal/recipe"
)

// reportNamespace scopes report ids so they never collide with other
// name-based UUIDs.
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/specialistvlad/guardian/report"))

// Report is the immutable outcome of one verification.
type Report struct {
	id         uuid.UUID
	dishID     string
	score      int
	violations []evaluator.Violation
}

// ID is derived from the dish and the candidate's content, so resubmitting
// the same recipe yields the same id.
func (r *Report) ID() uuid.UUID { return r.id }

// DishID returns the dish the candidate was verified against.
func (r *Report) DishID() string { return r.dishID }

// Score returns the authenticity score in [0, 100].
func (r *Report) Score() int { return r.score }

// Violations returns a copy of the violations in evaluation order.
func (r *Report) Violations() []evaluator.Violation { return slices.Clone(r.violations) }

// Count returns how many violations of kind the report holds.
func (r *Report) Count(kind evaluator.Kind) int {
	n := 0
	for _, v := range r.violations {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

type reportJSON struct {
	ID         string                `json:"report_id"`
	DishID     string                `json:"dish_id"`
	Score      int                   `json:"score"`
	Violations []evaluator.Violation `json:"violations"`
}

// MarshalJSON encodes the report with a stable field order. Violations is
// always an array.
func (r *Report) MarshalJSON() ([]byte, error) {
	vs := r.violations
	if vs == nil {
		vs = []evaluator.Violation{}
	}
	return json.Marshal(reportJSON{ID: r.id.String(), DishID: r.dishID, Score: r.score, Violations: vs})
}

// Scorer turns violation lists into reports.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer. A nil table means DefaultWeights.
func NewScorer(w Weights) *Scorer {
	if w == nil {
		w = DefaultWeights()
	}
	return &Scorer{weights: w}
}

// Weights returns a copy of the weight table in use.
func (s *Scorer) Weights() Weights { return maps.Clone(s.weights) }

// Report builds the report for one verification call.
func (s *Scorer) Report(dishID string, c *recipe.Candidate, violations []evaluator.Violation) *Report {
	return &Report{
		id:         ReportID(dishID, c),
		dishID:     dishID,
		score:      s.weights.Score(violations),
		violations: slices.Clone(violations),
	}
}

type canonicalStep struct {
	Index       float64 `json:"i"`
	Technique   string  `json:"t"`
	Intent      string  `json:"n"`
	Instruction string  `json:"s"`
}

type canonicalIngredient struct {
	Key      string `json:"k"`
	Quantity string `json:"q"`
}

// ReportID derives the UUIDv5 of a verification from the dish id and the
// parts of the candidate that affect evaluation. The title is ignored.
func ReportID(dishID string, c *recipe.Candidate) uuid.UUID {
	var doc struct {
		Dish        string                `json:"d"`
		Steps       []canonicalStep       `json:"st"`
		Ingredients []canonicalIngredient `json:"in"`
	}
	doc.Dish = dishID
	if c != nil {
		for _, s := range c.Steps() {
			doc.Steps = append(doc.Steps, canonicalStep{
				Index:       s.Index.Value(),
				Technique:   s.Technique.String(),
				Intent:      s.Intent.String(),
				Instruction: s.Instruction,
			})
		}
		for _, ing := range c.Ingredients() {
			doc.Ingredients = append(doc.Ingredients, canonicalIngredient{Key: ing.Key, Quantity: ing.Quantity.Raw})
		}
	}
	// Marshalling plain structs of strings and finite floats cannot fail.
	data, _ := json.Marshal(doc)
	return uuid.NewSHA1(reportNamespace, data)
}

package builder

import (
	"encoding/json"
)

// Submission is the wire shape of a candidate recipe.
type Submission struct {
	Title       string             `json:"title"`
	Steps       []StepRecord       `json:"steps"`
	Ingredients []IngredientRecord `json:"ingredients"`
}

// StepRecord is one submitted step. StepIndex holds either a JSON string
// ("1.0") or a JSON number (1.0).
type StepRecord struct {
	StepIndex   json.RawMessage `json:"step_index"`
	Technique   string          `json:"technique"`
	Instruction string          `json:"instruction_english"`
	// AltInstruction accepts the shorter key some clients send.
	AltInstruction string `json:"instruction,omitempty"`
	Intent         string `json:"intent"`
}

// IngredientRecord is one submitted ingredient.
type IngredientRecord struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

func (r StepRecord) instruction() string {
	if r.Instruction != "" {
		return r.Instruction
	}
	return r.AltInstruction
}

package builder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/specialistvlad/guardian/internal/ctxlog"
	"github.com/specialistvlad/guardian/internal/recipe"
	"github.com/specialistvlad/guardian/internal/technique"
)

// BuildJSON decodes a JSON submission and builds a candidate from it.
func BuildJSON(ctx context.Context, data []byte) (*recipe.Candidate, error) {
	var sub Submission
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&sub); err != nil {
		return nil, &MalformedSubmissionError{Problems: []Problem{{Reason: fmt.Sprintf("invalid JSON: %v", err)}}}
	}
	if dec.More() {
		return nil, &MalformedSubmissionError{Problems: []Problem{{Reason: "unexpected data after the JSON document"}}}
	}
	return Build(ctx, sub)
}

// Build validates a decoded submission and links it into a candidate graph.
func Build(ctx context.Context, sub Submission) (*recipe.Candidate, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting candidate construction.", "steps", len(sub.Steps), "ingredients", len(sub.Ingredients))

	var probs problems

	// First pass: parse every step on its own.
	steps := make([]recipe.Step, 0, len(sub.Steps))
	indexOK := make([]bool, 0, len(sub.Steps))
	for i, rec := range sub.Steps {
		s, ok := parseStep(i, rec, &probs)
		steps = append(steps, s)
		indexOK = append(indexOK, ok)
	}
	logger.Debug("Build: Step parsing complete.", "problems", len(probs))

	// Second pass: indices must strictly increase.
	last := -1
	for i := range steps {
		if !indexOK[i] {
			continue
		}
		if last >= 0 && !steps[last].Index.Less(steps[i].Index) {
			if steps[last].Index.Value() == steps[i].Index.Value() {
				probs.addf(fmt.Sprintf("steps[%d].step_index", i), "duplicate step index %s (also used by steps[%d])", steps[i].Index, last)
			} else {
				probs.addf(fmt.Sprintf("steps[%d].step_index", i), "step index %s is not greater than %s of steps[%d]", steps[i].Index, steps[last].Index, last)
			}
		}
		last = i
	}
	logger.Debug("Build: Ordering check complete.")

	// Third pass: ingredients.
	ingredients := make([]recipe.Ingredient, 0, len(sub.Ingredients))
	for i, rec := range sub.Ingredients {
		ing := recipe.NewIngredient(rec.Name, rec.Quantity)
		if ing.Key == "" {
			probs.addf(fmt.Sprintf("ingredients[%d].name", i), "ingredient name is empty")
			continue
		}
		if rec.Quantity != "" && !ing.Quantity.Parsed {
			logger.Debug("Build: Ingredient quantity kept as free text.", "ingredient", ing.Name, "quantity", rec.Quantity)
		}
		ingredients = append(ingredients, ing)
	}

	if err := probs.err(); err != nil {
		logger.Debug("Build: Submission rejected.", "problems", len(probs))
		return nil, err
	}

	// Fourth pass: link the chain.
	candidate, err := recipe.NewCandidate(sub.Title, steps, ingredients)
	if err != nil {
		return nil, &MalformedSubmissionError{Problems: []Problem{{Field: "steps", Reason: err.Error()}}}
	}
	logger.Debug("Build: Candidate construction successful.", "nodes", candidate.Graph().Len())
	return candidate, nil
}

// parseStep parses one record. The boolean reports whether the index was
// usable, so the ordering pass can skip records it cannot compare.
func parseStep(i int, rec StepRecord, probs *problems) (recipe.Step, bool) {
	field := func(name string) string { return fmt.Sprintf("steps[%d].%s", i, name) }

	s := recipe.Step{Position: i, Instruction: strings.TrimSpace(rec.instruction())}

	idx, err := parseIndex(rec.StepIndex)
	indexOK := err == nil
	if err != nil {
		probs.addf(field("step_index"), "%v", err)
	} else {
		s.Index = idx
	}

	if t, err := technique.Parse(rec.Technique); err != nil {
		probs.addf(field("technique"), "%v", err)
	} else {
		s.Technique = t
	}

	if in, err := technique.ParseIntent(rec.Intent); err != nil {
		probs.addf(field("intent"), "%v", err)
	} else {
		s.Intent = in
	}
	return s, indexOK
}

func parseIndex(raw json.RawMessage) (recipe.StepIndex, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return recipe.StepIndex{}, fmt.Errorf("step index is missing")
	}
	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return recipe.StepIndex{}, fmt.Errorf("step index is not a valid string: %w", err)
		}
		return recipe.ParseStepIndex(text)
	}
	var num json.Number
	if err := json.Unmarshal(trimmed, &num); err != nil {
		return recipe.StepIndex{}, fmt.Errorf("step index must be a number or numeric string")
	}
	return recipe.ParseStepIndex(num.String())
}

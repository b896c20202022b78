// This file contains the logic for translating HCL schema structs into the
// format-agnostic catalog model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/specialistvlad/guardian/internal/config"
	"github.com/specialistvlad/guardian/internal/ctxlog"
)

// translateDish converts the HCL-specific dish schema into the agnostic model.
func translateDish(ctx context.Context, source string, d *Dish) (*config.Dish, error) {
	logger := ctxlog.FromContext(ctx).With("dish", d.ID)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL dish to internal config model.", "states", len(d.States), "ingredients", len(d.Ingredients))

	dish := &config.Dish{
		ID:     d.ID,
		Title:  d.Title,
		Source: source,
	}
	for _, ing := range d.Ingredients {
		dish.Ingredients = append(dish.Ingredients, &config.Ingredient{
			Name:      ing.Name,
			Quantity:  ing.Quantity,
			Aliases:   ing.Aliases,
			Tolerance: ing.Tolerance,
		})
	}

	for _, s := range d.States {
		state := &config.State{
			ID:          s.ID,
			Technique:   s.Technique,
			Description: s.Description,
			After:       s.After,
		}
		var err error
		if state.Temperature, err = decodeRange(ctx, s.Temperature, "temperature"); err != nil {
			return nil, fmt.Errorf("in %s, dish '%s', state '%s': %w", source, d.ID, s.ID, err)
		}
		if state.Duration, err = decodeRange(ctx, s.Duration, "duration"); err != nil {
			return nil, fmt.Errorf("in %s, dish '%s', state '%s': %w", source, d.ID, s.ID, err)
		}
		dish.States = append(dish.States, state)
	}
	return dish, nil
}

// translateScoring converts the scoring block.
func translateScoring(ctx context.Context, s *Scoring) (*config.Scoring, error) {
	weights, err := decodeWeights(ctx, s.Weights)
	if err != nil {
		return nil, err
	}
	return &config.Scoring{Weights: weights}, nil
}

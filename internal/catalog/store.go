package catalog

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/specialistvlad/guardian/internal/config"
	"github.com/specialistvlad/guardian/internal/ctxlog"
	"github.com/specialistvlad/guardian/internal/recipe"
	"github.com/specialistvlad/guardian/internal/technique"
)

// Store holds one master recipe per dish identifier. It has no mutation API.
type Store struct {
	dishes  map[string]*recipe.Master
	ids     []string
	weights map[string]int
}

// Empty returns a store with no dishes.
func Empty() *Store {
	return &Store{dishes: map[string]*recipe.Master{}, weights: map[string]int{}}
}

// Load validates every dish of the model and builds the store. Any invalid
// dish fails the whole load.
func Load(ctx context.Context, model *config.Model) (*Store, error) {
	logger := ctxlog.FromContext(ctx)
	s := Empty()
	if model == nil {
		return s, nil
	}

	for _, d := range model.Dishes {
		if _, dup := s.dishes[d.ID]; dup {
			return nil, fmt.Errorf("dish %q is defined more than once", d.ID)
		}
		m, err := buildMaster(d)
		if err != nil {
			if d.Source != "" {
				return nil, fmt.Errorf("in %s: %w", d.Source, err)
			}
			return nil, err
		}
		s.dishes[d.ID] = m
		logger.Debug("Master recipe loaded.", "dish", d.ID, "states", m.Graph().Len(), "ingredients", len(m.Ingredients()))
	}
	s.ids = slices.Sorted(maps.Keys(s.dishes))

	if model.Scoring != nil {
		for kind, w := range model.Scoring.Weights {
			if w < 0 {
				return nil, fmt.Errorf("weight for %q cannot be negative, got %d", kind, w)
			}
			s.weights[kind] = w
		}
	}

	logger.Info("Catalog loaded.", "dishes", len(s.ids), "weight_overrides", len(s.weights))
	return s, nil
}

func buildMaster(d *config.Dish) (*recipe.Master, error) {
	ingredients := make([]recipe.MasterIngredient, 0, len(d.Ingredients))
	for _, ing := range d.Ingredients {
		mi := recipe.MasterIngredient{
			Name:      ing.Name,
			Key:       recipe.NormalizeName(ing.Name),
			Quantity:  recipe.ParseQuantity(ing.Quantity),
			Tolerance: ing.Tolerance,
		}
		for _, a := range ing.Aliases {
			if k := recipe.NormalizeName(a); k != "" {
				mi.Aliases = append(mi.Aliases, k)
			}
		}
		ingredients = append(ingredients, mi)
	}

	states := make([]recipe.StateSpec, 0, len(d.States))
	for _, st := range d.States {
		tech, err := technique.Parse(st.Technique)
		if err != nil {
			return nil, fmt.Errorf("dish %q, state %q: %w", d.ID, st.ID, err)
		}
		temp, err := temperatureRange(st.Temperature)
		if err != nil {
			return nil, fmt.Errorf("dish %q, state %q: temperature: %w", d.ID, st.ID, err)
		}
		if temp != nil && !tech.AppliesHeat() && !tech.RemovesHeat() {
			return nil, fmt.Errorf("dish %q, state %q: temperature bounds need a technique that changes heat, got %s", d.ID, st.ID, tech)
		}
		dur, err := durationRange(st.Duration)
		if err != nil {
			return nil, fmt.Errorf("dish %q, state %q: duration: %w", d.ID, st.ID, err)
		}
		states = append(states, recipe.StateSpec{
			RequiredState: recipe.RequiredState{
				ID:          st.ID,
				Technique:   tech,
				Description: st.Description,
				Temperature: temp,
				Duration:    dur,
			},
			After: st.After,
		})
	}
	return recipe.NewMaster(d.ID, d.Title, ingredients, states)
}

// Lookup returns the master recipe for dishID.
func (s *Store) Lookup(dishID string) (*recipe.Master, error) {
	if m, ok := s.dishes[dishID]; ok {
		return m, nil
	}
	return nil, &UnknownDishError{DishID: dishID}
}

// ListDishes returns the dish identifiers in lexicographic order.
func (s *Store) ListDishes() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of dishes.
func (s *Store) Len() int { return len(s.ids) }

// Weights returns the weight overrides declared by the catalog's scoring
// blocks, keyed by violation kind.
func (s *Store) Weights() map[string]int {
	return maps.Clone(s.weights)
}

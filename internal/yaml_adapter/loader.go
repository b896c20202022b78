// Package yaml_adapter implements config.Loader for YAML catalog files. The
// document mirrors the HCL schema:
//
//	dishes:
//	  - id: basque-cheesecake
//	    title: Basque Burnt Cheesecake
//	    ingredients:
//	      - name: eggs
//	        quantity: "5"
//	        aliases: [egg]
//	    states:
//	      - id: bake
//	        technique: baking
//	        after: [mix]
//	        temperature: {min: 200, max: 230, unit: C}
//	scoring:
//	  weights:
//	    missing_step: 20
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/guardian/internal/config"
	"github.com/specialistvlad/guardian/internal/ctxlog"
)

type document struct {
	Dishes  []dish   `yaml:"dishes"`
	Scoring *scoring `yaml:"scoring"`
}

type dish struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Ingredients []ingredient `yaml:"ingredients"`
	States      []state      `yaml:"states"`
}

type ingredient struct {
	Name      string   `yaml:"name"`
	Quantity  string   `yaml:"quantity"`
	Aliases   []string `yaml:"aliases"`
	Tolerance string   `yaml:"tolerance"`
}

type state struct {
	ID          string   `yaml:"id"`
	Technique   string   `yaml:"technique"`
	Description string   `yaml:"description"`
	After       []string `yaml:"after"`
	Temperature *bounds  `yaml:"temperature"`
	Duration    *bounds  `yaml:"duration"`
}

type bounds struct {
	Min  *float64 `yaml:"min"`
	Max  *float64 `yaml:"max"`
	Unit string   `yaml:"unit"`
}

type scoring struct {
	Weights map[string]int `yaml:"weights"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string { return []string{".yaml", ".yml"} }

// Load decodes a single YAML document. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, name string, src []byte) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx).With("file", name)
	logger.Debug("YAML loader started.")

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", name, err)
	}

	model := &config.Model{}
	for i, d := range doc.Dishes {
		if d.ID == "" {
			return nil, fmt.Errorf("in %s, dishes[%d]: id is required", name, i)
		}
		out := &config.Dish{ID: d.ID, Title: d.Title, Source: name}
		for _, ing := range d.Ingredients {
			out.Ingredients = append(out.Ingredients, &config.Ingredient{
				Name:      ing.Name,
				Quantity:  ing.Quantity,
				Aliases:   ing.Aliases,
				Tolerance: ing.Tolerance,
			})
		}
		for j, s := range d.States {
			if s.Technique == "" {
				return nil, fmt.Errorf("in %s, dish '%s', states[%d]: technique is required", name, d.ID, j)
			}
			temp, err := s.Temperature.toConfig("temperature")
			if err != nil {
				return nil, fmt.Errorf("in %s, dish '%s', state '%s': %w", name, d.ID, s.ID, err)
			}
			dur, err := s.Duration.toConfig("duration")
			if err != nil {
				return nil, fmt.Errorf("in %s, dish '%s', state '%s': %w", name, d.ID, s.ID, err)
			}
			out.States = append(out.States, &config.State{
				ID:          s.ID,
				Technique:   s.Technique,
				Description: s.Description,
				After:       s.After,
				Temperature: temp,
				Duration:    dur,
			})
		}
		model.Dishes = append(model.Dishes, out)
	}
	if doc.Scoring != nil {
		weights := doc.Scoring.Weights
		if weights == nil {
			weights = map[string]int{}
		}
		model.Scoring = &config.Scoring{Weights: weights}
	}

	logger.Debug("YAML loading complete.", "dishes", len(model.Dishes), "scoring", model.Scoring != nil)
	return model, nil
}

func (b *bounds) toConfig(attr string) (*config.Range, error) {
	if b == nil {
		return nil, nil
	}
	if b.Min == nil && b.Max == nil {
		return nil, fmt.Errorf("%s must set at least one of min or max", attr)
	}
	return &config.Range{Min: b.Min, Max: b.Max, Unit: b.Unit}, nil
}

package verifier

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepRecord struct {
	Index       string `json:"step_index"`
	Technique   string `json:"technique"`
	Instruction string `json:"instruction_english"`
	Intent      string `json:"intent"`
}

type ingredientRecord struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

type candidateRecord struct {
	Title       string             `json:"title"`
	Steps       []stepRecord       `json:"steps"`
	Ingredients []ingredientRecord `json:"ingredients"`
}

func (c candidateRecord) encode(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(c)
	require.NoError(t, err)
	return data
}

// numbered assigns step indexes 1..n.
func numbered(steps ...stepRecord) []stepRecord {
	for i := range steps {
		steps[i].Index = fmt.Sprint(i + 1)
	}
	return steps
}

func ingredients(names ...string) []ingredientRecord {
	out := make([]ingredientRecord, 0, len(names))
	for _, n := range names {
		out = append(out, ingredientRecord{Name: n})
	}
	return out
}

// faithful holds one recipe per curated dish that follows its master
// recipe, written the way a cook would, with fractions, several times per
// step and repeated folds.
var faithful = map[string]candidateRecord{
	"basque-cheesecake": {
		Steps: numbered(
			stepRecord{Technique: "mixing", Instruction: "Beat the cheese and sugar, add the eggs one by one, then the cream.", Intent: "preparation"},
			stepRecord{Technique: "baking", Instruction: "Bake at 230°C for 1/2 hour, then 15 minutes more until deeply browned.", Intent: "cooking"},
			stepRecord{Technique: "cooling", Instruction: "Cool completely in the tin.", Intent: "setting"},
		),
		Ingredients: ingredients("cream cheese", "caster sugar", "eggs", "double cream"),
	},
	"beef-bourguignon": {
		Steps: numbered(
			stepRecord{Technique: "marinating", Instruction: "Marinate the beef in the wine overnight.", Intent: "preparation"},
			stepRecord{Technique: "frying", Instruction: "Brown the beef in batches.", Intent: "cooking"},
			stepRecord{Technique: "sauteing", Instruction: "Soften the lardons, onions and carrots for 10 minutes.", Intent: "cooking"},
			stepRecord{Technique: "simmering", Instruction: "Simmer covered for 2 1/2 hours at 160°C.", Intent: "cooking"},
			stepRecord{Technique: "plating", Instruction: "Serve with the mushrooms.", Intent: "finishing"},
		),
		Ingredients: ingredients("beef chuck", "red wine", "onions", "carrots", "mushrooms"),
	},
	"creme-brulee": {
		Steps: numbered(
			stepRecord{Technique: "simmering", Instruction: "Heat the cream with the vanilla to 90°C, just below the boil.", Intent: "preparation"},
			stepRecord{Technique: "whisking", Instruction: "Whisk the yolks and sugar until pale.", Intent: "preparation"},
			stepRecord{Technique: "tempering", Instruction: "Pour the hot cream onto the yolks, whisking constantly.", Intent: "preparation"},
			stepRecord{Technique: "baking", Instruction: "Bake in a water bath at 150°C for 35-40 minutes.", Intent: "cooking"},
			stepRecord{Technique: "chilling", Instruction: "Chill for at least 4 hours.", Intent: "setting"},
			stepRecord{Technique: "caramelizing", Instruction: "Sprinkle with sugar and torch until amber.", Intent: "finishing"},
		),
		Ingredients: ingredients("heavy cream", "egg yolks", "sugar"),
	},
	"french-omelette": {
		Steps: numbered(
			stepRecord{Technique: "whisking", Instruction: "Beat 3 eggs with a pinch of salt.", Intent: "preparation"},
			stepRecord{Technique: "frying", Instruction: "Cook in foaming butter for 2 minutes, stirring, then roll.", Intent: "cooking"},
			stepRecord{Technique: "plating", Instruction: "Turn onto a warm plate and scatter with chives.", Intent: "finishing"},
		),
		Ingredients: ingredients("eggs", "butter"),
	},
	"sourdough-loaf": {
		Steps: numbered(
			stepRecord{Technique: "mixing", Instruction: "Mix flour, water and starter, rest 1 hour, then add the salt.", Intent: "preparation"},
			stepRecord{Technique: "kneading", Instruction: "Stretch and fold until smooth.", Intent: "preparation"},
			stepRecord{Technique: "proofing", Instruction: "Bulk ferment for 4 hours, with a set of folds every 30 minutes.", Intent: "preparation"},
			stepRecord{Technique: "proofing", Instruction: "Shape and proof overnight in the fridge.", Intent: "preparation"},
			stepRecord{Technique: "baking", Instruction: "Bake at 250°C for 20 minutes covered, then 25 minutes uncovered.", Intent: "cooking"},
			stepRecord{Technique: "cooling", Instruction: "Cool on a rack for at least 1 hour.", Intent: "setting"},
		),
		Ingredients: ingredients("bread flour", "water", "sourdough starter", "salt"),
	},
}

func TestVerifyJSON_FaithfulCuratedRecipes(t *testing.T) {
	t.Parallel()
	v := newVerifier(t)
	require.ElementsMatch(t, v.ListDishes(), slices.Collect(maps.Keys(faithful)), "every curated dish needs a faithful recipe")

	for dish, c := range faithful {
		t.Run(dish, func(t *testing.T) {
			t.Parallel()
			report, err := v.VerifyJSON(context.Background(), dish, c.encode(t))
			require.NoError(t, err)
			assert.Empty(t, report.Violations())
			assert.Equal(t, 100, report.Score())
		})
	}
}

func TestVerifyJSON_ExtraViolatingStepNeverRaisesScore(t *testing.T) {
	t.Parallel()
	v := newVerifier(t)

	for dish, c := range faithful {
		t.Run(dish, func(t *testing.T) {
			t.Parallel()
			base, err := v.VerifyJSON(context.Background(), dish, c.encode(t))
			require.NoError(t, err)

			// The last step performed first reaches a state too early.
			last := c.Steps[len(c.Steps)-1]
			early := c
			early.Steps = append([]stepRecord{{Index: "0.5", Technique: last.Technique, Instruction: last.Instruction, Intent: last.Intent}},
				c.Steps...)

			// A step whose technique the dish does not use leaves the
			// score where it was.
			extra := c
			extra.Steps = append(slices.Clone(c.Steps), stepRecord{Index: "99", Technique: "resting", Instruction: "Rest for 3 hours.", Intent: "finishing"})

			for name, mutated := range map[string]candidateRecord{"early": early, "extra": extra} {
				report, err := v.VerifyJSON(context.Background(), dish, mutated.encode(t))
				require.NoError(t, err, name)
				assert.LessOrEqual(t, report.Score(), base.Score(), name)
				if name == "early" {
					assert.Less(t, report.Score(), base.Score(), "an out-of-order step must cost points")
				}
			}
		})
	}
}

package config

// Model is the unified representation of every catalog document loaded.
type Model struct {
	// Dishes keeps discovery order; duplicates are rejected by Merge.
	Dishes  []*Dish
	Scoring *Scoring
}

// Dish is the format-agnostic representation of a `dish` block.
type Dish struct {
	ID          string
	Title       string
	Source      string // file the dish was read from, for error messages
	Ingredients []*Ingredient
	States      []*State
}

// Ingredient is a required ingredient of a dish.
type Ingredient struct {
	Name      string
	Quantity  string
	Aliases   []string
	Tolerance string
}

// State is a required state of a dish's DAG.
type State struct {
	ID          string
	Technique   string
	Description string
	After       []string
	Temperature *Range
	Duration    *Range
}

// Range is a parameter bound as written in the catalog. Either side may be
// absent. Unit is interpreted by the catalog: C or F for temperatures and
// s, min or h for durations; empty means the default unit.
type Range struct {
	Min  *float64
	Max  *float64
	Unit string
}

// Scoring carries the weight-table option. Keys are violation kinds.
type Scoring struct {
	Weights map[string]int
}

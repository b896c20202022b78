package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all possible top-level blocks from any file. Any other
// block or attribute is a decode error.
type fileRoot struct {
	Dishes  []*Dish  `hcl:"dish,block"`
	Scoring *Scoring `hcl:"scoring,block"`
}

// Dish is the HCL schema of a `dish` block.
type Dish struct {
	ID          string        `hcl:"id,label"`
	Title       string        `hcl:"title,optional"`
	Ingredients []*Ingredient `hcl:"ingredient,block"`
	States      []*State      `hcl:"state,block"`
}

// Ingredient is the HCL schema of an `ingredient` block.
type Ingredient struct {
	Name      string   `hcl:"name,label"`
	Quantity  string   `hcl:"quantity,optional"`
	Aliases   []string `hcl:"aliases,optional"`
	Tolerance string   `hcl:"tolerance,optional"`
}

// State is the HCL schema of a `state` block. Ranges stay expressions until
// translation so that omitted attributes can be told apart from null ones.
type State struct {
	ID          string         `hcl:"id,label"`
	Technique   string         `hcl:"technique"`
	Description string         `hcl:"description,optional"`
	After       []string       `hcl:"after,optional"`
	Temperature hcl.Expression `hcl:"temperature,optional"`
	Duration    hcl.Expression `hcl:"duration,optional"`
}

// Scoring is the HCL schema of the `scoring` block.
type Scoring struct {
	Weights hcl.Expression `hcl:"weights,optional"`
}

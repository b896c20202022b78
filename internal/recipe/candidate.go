package recipe

import (
	"fmt"

	"github.com/specialistvlad/guardian/internal/dag"
	"github.com/specialistvlad/guardian/internal/nodeid"
	"github.com/specialistvlad/guardian/internal/technique"
)

// Candidate is a submitted recipe arranged as a linear chain of steps.
type Candidate struct {
	Title       string
	steps       []Step
	ingredients []Ingredient
	graph       *dag.Graph[Step]
}

// NewCandidate assembles a candidate from steps that are already validated
// and in strictly increasing index order. Each step depends on its
// predecessor; ingredients that share a match key collapse to the first.
func NewCandidate(title string, steps []Step, ingredients []Ingredient) (*Candidate, error) {
	c := &Candidate{
		Title: title,
		graph: dag.New[Step](),
	}

	var prev dag.NodeID = -1
	for i, s := range steps {
		if i > 0 && !steps[i-1].Index.Less(s.Index) {
			return nil, fmt.Errorf("step index %s does not follow %s", s.Index, steps[i-1].Index)
		}
		s.Position = i
		id, err := c.graph.AddNode(nodeid.Step(i).String(), s)
		if err != nil {
			return nil, err
		}
		if prev >= 0 {
			if err := c.graph.AddEdge(prev, id); err != nil {
				return nil, err
			}
		}
		prev = id
		c.steps = append(c.steps, s)
	}

	seen := make(map[string]bool, len(ingredients))
	for _, ing := range ingredients {
		if seen[ing.Key] {
			continue
		}
		seen[ing.Key] = true
		c.ingredients = append(c.ingredients, ing)
	}
	return c, nil
}

// Steps returns the steps in submission order. Do not modify.
func (c *Candidate) Steps() []Step { return c.steps }

// Ingredients returns the de-duplicated ingredients in submission order. Do not modify.
func (c *Candidate) Ingredients() []Ingredient { return c.ingredients }

// Graph exposes the candidate's step chain.
func (c *Candidate) Graph() *dag.Graph[Step] { return c.graph }

// FirstStep returns the earliest step carrying t.
func (c *Candidate) FirstStep(t technique.Technique) (Step, bool) {
	for _, s := range c.steps {
		if s.Technique == t {
			return s, true
		}
	}
	return Step{}, false
}

// Uses reports whether any step carries t.
func (c *Candidate) Uses(t technique.Technique) bool {
	_, ok := c.FirstStep(t)
	return ok
}

package evaluator

import (
	"context"
	"fmt"
	"sort"

	"github.com/specialistvlad/guardian/internal/ctxlog"
	"github.com/specialistvlad/guardian/internal/dag"
	"github.com/specialistvlad/guardian/internal/nodeid"
	"github.com/specialistvlad/guardian/internal/recipe"
	"github.com/specialistvlad/guardian/internal/technique"
)

// Evaluator runs the constraint checks. It holds no per-call state and is
// safe for concurrent use.
type Evaluator struct {
	quantities QuantityPolicy
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithQuantityPolicy installs a policy for judging ingredient amounts.
func WithQuantityPolicy(p QuantityPolicy) Option {
	return func(e *Evaluator) {
		if p != nil {
			e.quantities = p
		}
	}
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{quantities: IgnoreQuantities}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate returns every violation of master by candidate in evaluation
// order. It never fails: parameters that cannot be read are skipped.
func (e *Evaluator) Evaluate(ctx context.Context, candidate *recipe.Candidate, master *recipe.Master) []Violation {
	logger := ctxlog.FromContext(ctx).With("dish", master.DishID)
	ctx = ctxlog.WithLogger(ctx, logger)

	var out []Violation
	out = append(out, e.checkIngredients(ctx, candidate, master)...)
	out = append(out, checkCoverage(candidate, master)...)
	out = append(out, checkOrdering(candidate, master)...)
	out = append(out, checkParameters(ctx, candidate, master)...)
	out = append(out, checkTransitions(candidate, master)...)

	logger.Debug("Evaluation finished.", "steps", len(candidate.Steps()), "violations", len(out))
	return out
}

func (e *Evaluator) checkIngredients(ctx context.Context, c *recipe.Candidate, m *recipe.Master) []Violation {
	var out []Violation
	for _, req := range m.Ingredients() {
		present, ok := findIngredient(c, req)
		if !ok {
			if req.Tolerance != "" {
				continue
			}
			out = append(out, Violation{
				Kind:    MissingIngredient,
				NodeRef: nodeid.Ingredient(req.Key).String(),
				Detail:  fmt.Sprintf("required ingredient %q is not listed", req.Name),
			})
			continue
		}
		out = append(out, e.quantities.CheckQuantity(ctx, present, req)...)
	}
	return out
}

func findIngredient(c *recipe.Candidate, req recipe.MasterIngredient) (recipe.Ingredient, bool) {
	for _, ing := range c.Ingredients() {
		if req.Matches(ing.Key) {
			return ing, true
		}
	}
	return recipe.Ingredient{}, false
}

func checkCoverage(c *recipe.Candidate, m *recipe.Master) []Violation {
	var out []Violation
	for _, id := range m.Order() {
		st := m.State(id)
		if c.Uses(st.Technique) {
			continue
		}
		out = append(out, Violation{
			Kind:    MissingStep,
			NodeRef: nodeid.State(st.ID).String(),
			Detail:  fmt.Sprintf("no step performs %s for required state %q", st.Technique, st.ID),
		})
	}
	return out
}

func checkOrdering(c *recipe.Candidate, m *recipe.Master) []Violation {
	type found struct {
		pos int
		v   Violation
	}
	var hits []found
	g := m.Graph()
	for _, edge := range g.Edges() {
		before, after := m.State(edge.From), m.State(edge.To)
		if before.Technique == after.Technique {
			continue
		}
		a, okA := c.FirstStep(before.Technique)
		b, okB := c.FirstStep(after.Technique)
		if !okA || !okB || a.Index.Less(b.Index) {
			continue
		}
		hits = append(hits, found{pos: b.Position, v: Violation{
			Kind:    WrongOrder,
			NodeRef: nodeid.Step(b.Position).String(),
			Detail: fmt.Sprintf("%s must come after %s (state %q before %q)",
				b.Label(), a.Label(), before.ID, after.ID),
		}})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]Violation, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.v)
	}
	return out
}

func checkParameters(ctx context.Context, c *recipe.Candidate, m *recipe.Master) []Violation {
	logger := ctxlog.FromContext(ctx)
	var out []Violation
	seen := make(map[technique.Technique]int)
	for _, step := range c.Steps() {
		nodes := m.StatesWith(step.Technique)
		if len(nodes) == 0 {
			continue
		}
		k := min(seen[step.Technique], len(nodes)-1)
		seen[step.Technique]++
		st := m.State(nodes[k])

		if st.Temperature != nil {
			found, errs := ExtractTemperatures(step.Instruction)
			for _, err := range errs {
				logger.Debug("Skipping unreadable temperature.", "step", step.Position, "error", err)
			}
			if v, ok := outOfRange(step, st, "temperature", "°C", *st.Temperature, found, false); ok {
				out = append(out, v)
			}
		}
		if st.Duration != nil {
			found, errs := ExtractDurations(step.Instruction)
			for _, err := range errs {
				logger.Debug("Skipping unreadable duration.", "step", step.Position, "error", err)
			}
			if v, ok := outOfRange(step, st, "duration", "min", *st.Duration, found, true); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

// outOfRange flags a step only when none of its readings fits bounds. When
// additive is set, readings are also tried as one total, so "20 minutes
// covered, then 25 uncovered" counts as 45 minutes. The first reading is
// the one reported.
func outOfRange(step recipe.Step, st recipe.RequiredState, param, unit string, bounds recipe.Range, found []Measurement, additive bool) (Violation, bool) {
	if len(found) == 0 {
		return Violation{}, false
	}
	var total Measurement
	for _, meas := range found {
		if within(bounds, meas) {
			return Violation{}, false
		}
		total.Low += meas.Low
		total.High += meas.High
	}
	if additive && len(found) > 1 && within(bounds, total) {
		return Violation{}, false
	}

	meas := found[0]
	return Violation{
		Kind:    OutOfRangeParameter,
		NodeRef: nodeid.Step(step.Position).String(),
		Detail: fmt.Sprintf("%s %s %s (%q) is outside %s for state %q",
			param, meas, unit, meas.Text, bounds, st.ID),
	}, true
}

func within(bounds recipe.Range, m Measurement) bool {
	return bounds.Contains(m.Low) && bounds.Contains(m.High)
}

func checkTransitions(c *recipe.Candidate, m *recipe.Master) []Violation {
	var out []Violation
	g := m.Graph()
	satisfied := make(map[dag.NodeID]bool)
	for _, step := range c.Steps() {
		nodes := m.StatesWith(step.Technique)
		if len(nodes) == 0 {
			continue
		}

		advanced, repeated := false, false
		for _, id := range nodes {
			if satisfied[id] {
				repeated = true
				continue
			}
			if allSatisfied(g.Predecessors(id), satisfied) {
				satisfied[id] = true
				advanced = true
				break
			}
		}
		if advanced || repeated {
			continue
		}

		target := nodes[0]
		var blocker dag.NodeID = -1
		for _, p := range g.Predecessors(target) {
			if !satisfied[p] {
				blocker = p
				break
			}
		}
		detail := fmt.Sprintf("%s reaches state %q before it is reachable", step.Label(), g.Key(target))
		if blocker >= 0 {
			b := m.State(blocker)
			detail = fmt.Sprintf("%s reaches state %q before required state %q (%s)",
				step.Label(), g.Key(target), b.ID, b.Technique)
		}
		out = append(out, Violation{
			Kind:    InvalidTransition,
			NodeRef: nodeid.Step(step.Position).String(),
			Detail:  detail,
		})
		// The state was still reached; later steps are judged against it.
		satisfied[target] = true
	}
	return out
}

func allSatisfied(ids []dag.NodeID, satisfied map[dag.NodeID]bool) bool {
	for _, id := range ids {
		if !satisfied[id] {
			return false
		}
	}
	return true
}

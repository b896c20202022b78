package recipe

import (
	"fmt"

	"github.com/specialistvlad/guardian/internal/dag"
	"github.com/specialistvlad/guardian/internal/technique"
)

// RequiredState is a node of a master recipe DAG.
type RequiredState struct {
	ID          string
	Technique   technique.Technique
	Description string
	// Temperature is in degrees Celsius; nil means unconstrained.
	Temperature *Range
	// Duration is in minutes; nil means unconstrained.
	Duration *Range
}

// StateSpec describes a required state before it is linked into a graph.
type StateSpec struct {
	RequiredState
	After []string
}

// MasterIngredient is an ingredient the master recipe calls for.
type MasterIngredient struct {
	Name    string
	Key     string
	Aliases []string // normalised keys
	// Quantity is informational; presence checking does not use it.
	Quantity Quantity
	// Tolerance, when non-empty, overrides the presence requirement. Its text
	// is handed to the configured quantity policy unchanged.
	Tolerance string
}

// Matches reports whether the candidate key names this ingredient.
func (m MasterIngredient) Matches(key string) bool {
	if key == m.Key {
		return true
	}
	for _, a := range m.Aliases {
		if a == key {
			return true
		}
	}
	return false
}

// Master is the canonical recipe for one dish.
type Master struct {
	DishID      string
	Title       string
	ingredients []MasterIngredient
	graph       *dag.Graph[RequiredState]
	order       []dag.NodeID
	byTechnique map[technique.Technique][]dag.NodeID
}

// NewMaster validates and links a master recipe. States may be listed in any
// order; `After` references are resolved by state ID.
func NewMaster(dishID, title string, ingredients []MasterIngredient, states []StateSpec) (*Master, error) {
	if dishID == "" {
		return nil, fmt.Errorf("dish id cannot be empty")
	}
	m := &Master{
		DishID:      dishID,
		Title:       title,
		graph:       dag.New[RequiredState](),
		byTechnique: make(map[technique.Technique][]dag.NodeID),
	}

	seen := make(map[string]string)
	for _, ing := range ingredients {
		if ing.Key == "" {
			return nil, fmt.Errorf("dish %q: ingredient name cannot be empty", dishID)
		}
		for i, k := range append([]string{ing.Key}, ing.Aliases...) {
			if i > 0 && k == ing.Key {
				continue
			}
			if owner, dup := seen[k]; dup {
				return nil, fmt.Errorf("dish %q: ingredient %q clashes with %q", dishID, ing.Name, owner)
			}
			seen[k] = ing.Name
		}
		m.ingredients = append(m.ingredients, ing)
	}

	for _, s := range states {
		if !s.Technique.Valid() {
			return nil, fmt.Errorf("dish %q: state %q has no valid technique", dishID, s.ID)
		}
		if _, err := m.graph.AddNode(s.ID, s.RequiredState); err != nil {
			return nil, fmt.Errorf("dish %q: %w", dishID, err)
		}
	}
	for _, s := range states {
		for _, dep := range s.After {
			if err := m.graph.AddEdgeByKey(dep, s.ID); err != nil {
				return nil, fmt.Errorf("dish %q: %w", dishID, err)
			}
		}
	}

	order, err := m.graph.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("dish %q: %w", dishID, err)
	}
	m.order = order
	for _, id := range order {
		t := m.graph.Node(id).Technique
		m.byTechnique[t] = append(m.byTechnique[t], id)
	}
	return m, nil
}

// Ingredients returns the required ingredients in declaration order. Do not modify.
func (m *Master) Ingredients() []MasterIngredient { return m.ingredients }

// Graph exposes the required-state DAG.
func (m *Master) Graph() *dag.Graph[RequiredState] { return m.graph }

// Order returns the state IDs in deterministic topological order. Do not modify.
func (m *Master) Order() []dag.NodeID { return m.order }

// StatesWith returns the states requiring t in topological order. Do not modify.
func (m *Master) StatesWith(t technique.Technique) []dag.NodeID { return m.byTechnique[t] }

// State returns the payload of a state node.
func (m *Master) State(id dag.NodeID) RequiredState { return m.graph.Node(id) }

package dag

import (
	"slices"
)

// New creates and returns an initialized, empty Graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{index: make(map[string]NodeID)}
}

// AddNode appends a node with the given unique key and returns its ID.
func (g *Graph[T]) AddNode(key string, payload T) (NodeID, error) {
	if key == "" {
		return -1, invalidf("node key cannot be empty")
	}
	if _, exists := g.index[key]; exists {
		return -1, invalidf("duplicate node %q", key)
	}
	id := NodeID(len(g.keys))
	g.keys = append(g.keys, key)
	g.payloads = append(g.payloads, payload)
	g.preds = append(g.preds, nil)
	g.succs = append(g.succs, nil)
	g.index[key] = id
	return id, nil
}

// AddEdge records that `from` must happen before `to`. Adding an existing
// edge again is a no-op.
func (g *Graph[T]) AddEdge(from, to NodeID) error {
	if !g.has(from) {
		return invalidf("source node %d not found", from)
	}
	if !g.has(to) {
		return invalidf("destination node %d not found", to)
	}
	if from == to {
		return invalidf("self-referential edge not allowed: %s -> %s", g.keys[from], g.keys[from])
	}

	pos, found := slices.BinarySearch(g.preds[to], from)
	if found {
		return nil
	}
	g.preds[to] = slices.Insert(g.preds[to], pos, from)
	spos, _ := slices.BinarySearch(g.succs[from], to)
	g.succs[from] = slices.Insert(g.succs[from], spos, to)
	g.edges = append(g.edges, Edge{From: from, To: to})
	return nil
}

// AddEdgeByKey is AddEdge addressed by node keys.
func (g *Graph[T]) AddEdgeByKey(fromKey, toKey string) error {
	from, ok := g.index[fromKey]
	if !ok {
		return invalidf("node %q depends on non-existent node %q", toKey, fromKey)
	}
	to, ok := g.index[toKey]
	if !ok {
		return invalidf("destination node %q not found", toKey)
	}
	return g.AddEdge(from, to)
}

func (g *Graph[T]) has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.keys)
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int { return len(g.keys) }

// Lookup resolves a node key to its ID.
func (g *Graph[T]) Lookup(key string) (NodeID, bool) {
	id, ok := g.index[key]
	return id, ok
}

// Key returns the key of the node. It panics on an out-of-range ID.
func (g *Graph[T]) Key(id NodeID) string { return g.keys[id] }

// Node returns the payload of the node. It panics on an out-of-range ID.
func (g *Graph[T]) Node(id NodeID) T { return g.payloads[id] }

// Predecessors returns the direct predecessors of id in ascending ID order.
// The returned slice must not be modified.
func (g *Graph[T]) Predecessors(id NodeID) []NodeID { return g.preds[id] }

// Edges returns all edges in insertion order.
func (g *Graph[T]) Edges() []Edge { return slices.Clone(g.edges) }

// DetectCycles checks the graph for any cycles using a three-colour DFS. The
// returned error names the nodes on the first cycle found, visiting roots in
// ID order so the result is deterministic.
func (g *Graph[T]) DetectCycles() error {
	const (
		white = iota
		grey
		black
	)
	colour := make([]uint8, len(g.keys))
	var stack []NodeID

	var visit func(n NodeID) error
	visit = func(n NodeID) error {
		colour[n] = grey
		stack = append(stack, n)
		for _, next := range g.succs[n] {
			switch colour[next] {
			case grey:
				start := slices.Index(stack, next)
				path := make([]string, 0, len(stack)-start+1)
				for _, id := range stack[start:] {
					path = append(path, g.keys[id])
				}
				path = append(path, g.keys[next])
				return cycleError(path)
			case white:
				if err := visit(next); err != nil {
					return err
				}
			}
		}
		stack = stack[:len(stack)-1]
		colour[n] = black
		return nil
	}

	for id := range g.keys {
		if colour[id] == white {
			if err := visit(NodeID(id)); err != nil {
				return err
			}
		}
	}
	return nil
}

package dag

// NodeID is the stable arena index of a node. IDs are dense and assigned in
// insertion order starting at zero.
type NodeID int

// Edge is a must-happen-before relation: From precedes To.
type Edge struct {
	From NodeID
	To   NodeID
}

// Graph is an arena of payload-carrying nodes keyed by a unique string.
type Graph[T any] struct {
	keys     []string
	payloads []T
	index    map[string]NodeID
	// preds and succs are kept sorted by NodeID.
	preds [][]NodeID
	succs [][]NodeID
	edges []Edge
}

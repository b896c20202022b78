package dag

import (
	"container/heap"
)

// TopologicalOrder returns every node ordered so that each node appears after
// all of its predecessors. Among nodes that are ready at the same time the
// lowest ID goes first, so declaration order breaks ties.
func (g *Graph[T]) TopologicalOrder() ([]NodeID, error) {
	indegree := make([]int, len(g.keys))
	for id := range g.keys {
		indegree[id] = len(g.preds[id])
	}

	ready := &idHeap{}
	for id, deg := range indegree {
		if deg == 0 {
			heap.Push(ready, NodeID(id))
		}
	}

	order := make([]NodeID, 0, len(g.keys))
	for ready.Len() > 0 {
		n := heap.Pop(ready).(NodeID)
		order = append(order, n)
		for _, next := range g.succs[n] {
			indegree[next]--
			if indegree[next] == 0 {
				heap.Push(ready, next)
			}
		}
	}

	if len(order) != len(g.keys) {
		if err := g.DetectCycles(); err != nil {
			return nil, err
		}
		return nil, invalidf("topological sort visited %d of %d nodes", len(order), len(g.keys))
	}
	return order, nil
}

type idHeap []NodeID

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x any)        { *h = append(*h, x.(NodeID)) }
func (h *idHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

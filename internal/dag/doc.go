// Package dag provides the arena-backed directed acyclic graph shared by the
// master recipe catalog and candidate submissions.
//
// Nodes live in a slice and are referenced by stable integer IDs assigned in
// insertion order. Edges are stored as ID adjacency lists, so there are no
// node-to-node pointers and two graphs can be compared structurally by
// walking their IDs. A graph is built by a single goroutine and is read-only
// afterwards, which makes it safe to share between concurrent readers
// without locking.
package dag

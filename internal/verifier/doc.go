// Package verifier is the entry point of the verification core. It wires the
// graph builder, the master recipe store, the constraint evaluator and the
// scorer into the two operations callers use: verifying a candidate against
// a dish and listing the dishes the catalog knows.
package verifier

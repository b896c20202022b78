// Package recipe holds the data model shared by the builder, the catalog and
// the evaluator: candidate submissions, master recipes and the small value
// types (step indices, quantities, parameter ranges) they are made of.
//
// Candidate recipes are owned by a single verification call. Master recipes
// are built once at startup and are read-only afterwards; every accessor
// returns either a value or a slice the caller must not modify.
package recipe

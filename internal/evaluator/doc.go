// Package evaluator compares a candidate recipe with a master recipe and
// lists every violated constraint.
//
// Five checks run in a fixed order and each emits its violations in a fixed
// order, so the same inputs always produce the same list:
//
//  1. ingredient completeness (missing_ingredient), master declaration order
//  2. technique coverage (missing_step), master topological order
//  3. ordering of master edges (wrong_order), candidate step order
//  4. parameter ranges (out_of_range_parameter), candidate step order
//  5. transition validity (invalid_transition), candidate step order
package evaluator

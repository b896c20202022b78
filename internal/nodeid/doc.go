/*
Package nodeid provides a structured representation for the node references
carried by verification findings, based on the canonical format `path`.

The format is a dot-separated sequence of segments where each segment may
carry an index, e.g. `step[2]`, `state.bake` or `ingredient.heavy_cream`.
Candidate steps are addressed by their position in the submission, master
states by their catalog id and ingredients by their normalised match key.

This package centralizes the formatting so that every check renders
references identically.
*/
package nodeid

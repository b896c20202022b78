// Package technique defines the closed vocabulary of culinary techniques and
// step intents. Matching between candidate steps and master states is always
// a comparison of these tagged values, never of free text.
package technique

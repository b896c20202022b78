package nodeid

import (
	"strconv"
	"strings"
)

// String serializes the Address into its canonical path string representation.
func (a *Address) String() string {
	if a == nil {
		return ""
	}

	var sb strings.Builder
	for i, segment := range a.Path {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(segment.Name)
		if segment.HasIndex() {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(segment.Index))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// Step addresses the candidate step at the given zero-based position.
func Step(position int) *Address {
	return &Address{Path: []PathSegment{NewPathSegmentWithIndex(RootStep, position)}}
}

// State addresses a required state of a master recipe by its catalog id.
func State(id string) *Address {
	return &Address{Path: []PathSegment{NewPathSegment(RootState), NewPathSegment(Slug(id))}}
}

// Ingredient addresses an ingredient by its match key.
func Ingredient(key string) *Address {
	return &Address{Path: []PathSegment{NewPathSegment(RootIngredient), NewPathSegment(Slug(key))}}
}

// Slug folds an arbitrary label into a valid segment name. Runs of characters
// outside [a-z0-9_-] collapse into a single underscore.
func Slug(label string) string {
	var sb strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pendingSep = false
			sb.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	if sb.Len() == 0 || sb.String() == "-" {
		// Labels with no usable characters still need a segment.
		return "_"
	}
	return sb.String()
}

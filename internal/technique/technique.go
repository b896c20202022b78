package technique

import (
	"fmt"
	"strings"
)

// Technique is a tagged enumeration of the state transformations a step can
// apply. The zero value is Unknown and never matches anything.
type Technique uint8

const (
	Unknown Technique = iota
	Mixing
	Whisking
	Folding
	Creaming
	Kneading
	Blending
	Marinating
	Proofing
	Resting
	Baking
	Roasting
	Boiling
	Simmering
	Poaching
	Steaming
	Frying
	Sauteing
	Grilling
	Caramelizing
	Tempering
	Cooling
	Chilling
	Freezing
	Plating
	numTechniques
)

var techniqueNames = [numTechniques]string{
	Unknown:      "unknown",
	Mixing:       "mixing",
	Whisking:     "whisking",
	Folding:      "folding",
	Creaming:     "creaming",
	Kneading:     "kneading",
	Blending:     "blending",
	Marinating:   "marinating",
	Proofing:     "proofing",
	Resting:      "resting",
	Baking:       "baking",
	Roasting:     "roasting",
	Boiling:      "boiling",
	Simmering:    "simmering",
	Poaching:     "poaching",
	Steaming:     "steaming",
	Frying:       "frying",
	Sauteing:     "sauteing",
	Grilling:     "grilling",
	Caramelizing: "caramelizing",
	Tempering:    "tempering",
	Cooling:      "cooling",
	Chilling:     "chilling",
	Freezing:     "freezing",
	Plating:      "plating",
}

// aliases maps accepted spellings onto canonical names.
var aliases = map[string]Technique{
	"mix":           Mixing,
	"whisk":         Whisking,
	"fold":          Folding,
	"cream":         Creaming,
	"knead":         Kneading,
	"blend":         Blending,
	"marinate":      Marinating,
	"proof":         Proofing,
	"proving":       Proofing,
	"rest":          Resting,
	"bake":          Baking,
	"roast":         Roasting,
	"boil":          Boiling,
	"simmer":        Simmering,
	"poach":         Poaching,
	"steam":         Steaming,
	"fry":           Frying,
	"deep-frying":   Frying,
	"saute":         Sauteing,
	"sautéing":      Sauteing,
	"grill":         Grilling,
	"caramelize":    Caramelizing,
	"caramelise":    Caramelizing,
	"caramelising":  Caramelizing,
	"temper":        Tempering,
	"cool":          Cooling,
	"chill":         Chilling,
	"refrigerating": Chilling,
	"freeze":        Freezing,
	"plate":         Plating,
}

var byName = func() map[string]Technique {
	m := make(map[string]Technique, len(techniqueNames)+len(aliases))
	for t := Technique(1); t < numTechniques; t++ {
		m[techniqueNames[t]] = t
	}
	for alias, t := range aliases {
		m[alias] = t
	}
	return m
}()

// Parse resolves a technique tag. Matching is case-insensitive and ignores
// surrounding whitespace; unrecognised tags return an error.
func Parse(raw string) (Technique, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if t, ok := byName[key]; ok {
		return t, nil
	}
	if key == "" {
		return Unknown, fmt.Errorf("technique tag is empty")
	}
	return Unknown, fmt.Errorf("unrecognized technique %q", raw)
}

// String returns the canonical tag.
func (t Technique) String() string {
	if t >= numTechniques {
		return fmt.Sprintf("technique(%d)", uint8(t))
	}
	return techniqueNames[t]
}

// Valid reports whether t is a known, non-zero technique.
func (t Technique) Valid() bool {
	return t > Unknown && t < numTechniques
}

// AppliesHeat reports whether the technique transfers heat into the food.
func (t Technique) AppliesHeat() bool {
	switch t {
	case Baking, Roasting, Boiling, Simmering, Poaching, Steaming, Frying, Sauteing, Grilling, Caramelizing:
		return true
	}
	return false
}

// RemovesHeat reports whether the technique brings the food down in temperature.
func (t Technique) RemovesHeat() bool {
	switch t {
	case Cooling, Chilling, Freezing:
		return true
	}
	return false
}

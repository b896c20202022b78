package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

// Quantity is a free-text amount, parsed opportunistically. When Parsed is
// false only Raw is meaningful.
type Quantity struct {
	Raw       string
	Magnitude float64
	Unit      string
	Parsed    bool
}

// NumberPattern matches a written amount: "2", "2.5", "1/2", "2 1/2", "½"
// or "2½". Longer forms come first so a mixed number is never cut short.
const NumberPattern = `(?:\d+(?:\.\d+)?\s*[½⅓⅔¼¾]|\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?|[½⅓⅔¼¾])`

var vulgarFractions = map[string]float64{
	"½": 1.0 / 2,
	"⅓": 1.0 / 3,
	"⅔": 2.0 / 3,
	"¼": 1.0 / 4,
	"¾": 3.0 / 4,
}

// ParseNumber reads text matched by NumberPattern, optionally preceded by a
// minus sign.
func ParseNumber(raw string) (float64, bool) {
	text := strings.TrimSpace(raw)
	neg := strings.HasPrefix(text, "-")
	text = strings.TrimSpace(strings.TrimPrefix(text, "-"))

	var total float64
	var fraction bool
	for glyph, v := range vulgarFractions {
		if rest, ok := strings.CutSuffix(text, glyph); ok {
			total, fraction, text = v, true, strings.TrimSpace(rest)
			break
		}
	}

	fields := strings.Fields(text)
	if len(fields) > 2 || (len(fields) == 0 && !fraction) {
		return 0, false
	}
	for i, f := range fields {
		num, den, isRatio := strings.Cut(f, "/")
		if !isRatio {
			// Only the first field may be whole.
			if i > 0 {
				return 0, false
			}
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return 0, false
			}
			total += v
			continue
		}
		if fraction || i != len(fields)-1 {
			return 0, false
		}
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		total += n / d
	}
	if neg {
		total = -total
	}
	return total, true
}

// quantityRegex accepts "400g", "1 kg", "1/2 cup", "1 1/2 tsp", "½ cup",
// "2.5 l" and "3".
var quantityRegex = regexp.MustCompile(`^(` + NumberPattern + `)?\s*([\p{L}.]+(?:\s+[\p{L}.]+)*)?$`)

var unitAliases = map[string]string{
	"g": "g", "gr": "g", "gram": "g", "grams": "g",
	"kg": "kg", "kilogram": "kg", "kilograms": "kg",
	"mg": "mg",
	"ml": "ml", "milliliter": "ml", "milliliters": "ml", "millilitre": "ml", "millilitres": "ml",
	"l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"cup": "cup", "cups": "cup",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"pinch": "pinch", "pinches": "pinch",
}

// ParseQuantity never fails: unparseable text yields a Quantity with
// Parsed == false.
func ParseQuantity(raw string) Quantity {
	q := Quantity{Raw: raw}
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return q
	}

	m := quantityRegex.FindStringSubmatch(text)
	if m == nil || m[1] == "" {
		return q
	}
	magnitude, ok := ParseNumber(m[1])
	if !ok {
		return q
	}

	unit := strings.TrimSuffix(m[2], ".")
	if canonical, ok := unitAliases[unit]; ok {
		unit = canonical
	}

	q.Magnitude = magnitude
	q.Unit = unit
	q.Parsed = true
	return q
}

// Ingredient is a candidate ingredient. Key is the normalised match key.
type Ingredient struct {
	Name     string
	Key      string
	Quantity Quantity
}

// NewIngredient builds an ingredient, deriving its key and parsed quantity.
func NewIngredient(name, quantity string) Ingredient {
	return Ingredient{
		Name:     strings.TrimSpace(name),
		Key:      NormalizeName(name),
		Quantity: ParseQuantity(quantity),
	}
}

package evaluator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/specialistvlad/guardian/internal/recipe"
)

// Measurement is a parameter value found in an instruction. A single value
// has Low == High; a written range such as "10-15 minutes" keeps both ends.
// Values are normalised to degrees Celsius or minutes.
type Measurement struct {
	Low  float64
	High float64
	Text string
}

func (m Measurement) String() string {
	if m.Low == m.High {
		return formatValue(m.Low)
	}
	return formatValue(m.Low) + "-" + formatValue(m.High)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

const number = recipe.NumberPattern

// A leading range bound is consumed explicitly so that "200-220°C" never
// reads as minus 220.
const rangePrefix = `(?:(` + number + `)\s*(?:-|–|to)\s*)?`

var (
	temperatureRegex = regexp.MustCompile(rangePrefix + `(-?` + number + `)\s*` +
		`(?:` +
		`(?:°|º|(?i:degrees?|deg)\b)\s*(?i:(celsius|centigrade|fahrenheit|c|f)\b)?` +
		`|(?i:(celsius|centigrade|fahrenheit))\b` +
		`|([CF])\b` +
		`)`)

	compoundDurationRegex = regexp.MustCompile(`(?i)(` + number + `)\s*(?:hours?|hrs?|h)\s*(?:and\s*)?(\d+)\s*(?:minutes?|mins?|m)\b`)

	durationRegex = regexp.MustCompile(`(?i)` + rangePrefix + `(` + number + `)\s*(hours?|hrs?|h|minutes?|mins?|m|seconds?|secs?|s)\b`)

	wordDurationRegex = regexp.MustCompile(`(?i)\b(overnight|half an hour|an hour)\b`)
)

var wordDurations = map[string]float64{
	"overnight":    480,
	"half an hour": 30,
	"an hour":      60,
}

// ExtractTemperatures finds every temperature in text, converted to Celsius.
// A bare "degrees" is read as Celsius. Mentions that cannot be interpreted
// are returned as errors and otherwise ignored.
func ExtractTemperatures(text string) ([]Measurement, []error) {
	var out []Measurement
	var errs []error
	for _, m := range temperatureRegex.FindAllStringSubmatch(text, -1) {
		unit := strings.ToLower(m[3] + m[4] + m[5])
		fahrenheit := unit == "f" || unit == "fahrenheit"

		meas, err := measurement(m[0], m[1], m[2], func(v float64) float64 {
			if fahrenheit {
				return (v - 32) * 5 / 9
			}
			return v
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, meas)
	}
	return out, errs
}

// ExtractDurations finds every duration in text, converted to minutes.
// Intervals such as "every 30 minutes" are not durations and are skipped.
func ExtractDurations(text string) ([]Measurement, []error) {
	var out []Measurement
	var errs []error

	// "1 hour 30 minutes" is one duration; blank it out before the
	// single-unit pass so it is not counted twice.
	rest := []byte(text)
	for _, loc := range compoundDurationRegex.FindAllStringSubmatchIndex(text, -1) {
		s := text[loc[0]:loc[1]]
		copy(rest[loc[0]:loc[1]], strings.Repeat(" ", len(s)))
		if isInterval(text, loc[0]) {
			continue
		}
		h, okH := recipe.ParseNumber(text[loc[2]:loc[3]])
		mins, errM := strconv.ParseFloat(text[loc[4]:loc[5]], 64)
		if !okH || errM != nil {
			errs = append(errs, fmt.Errorf("cannot read duration %q", s))
			continue
		}
		v := h*60 + mins
		out = append(out, Measurement{Low: v, High: v, Text: s})
	}

	remaining := string(rest)
	for _, loc := range durationRegex.FindAllStringSubmatchIndex(remaining, -1) {
		if isInterval(remaining, loc[0]) {
			continue
		}
		group := func(i int) string {
			if loc[2*i] < 0 {
				return ""
			}
			return remaining[loc[2*i]:loc[2*i+1]]
		}
		meas, err := measurement(group(0), group(1), group(2), toMinutes(strings.ToLower(group(3))))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, meas)
	}

	for _, loc := range wordDurationRegex.FindAllStringIndex(remaining, -1) {
		if isInterval(remaining, loc[0]) {
			continue
		}
		m := remaining[loc[0]:loc[1]]
		v := wordDurations[strings.ToLower(m)]
		out = append(out, Measurement{Low: v, High: v, Text: m})
	}
	return out, errs
}

// isInterval reports whether the mention starting at start repeats rather
// than lasts, as in "fold every 30 minutes".
func isInterval(text string, start int) bool {
	before := strings.ToLower(strings.TrimRight(text[:start], " \t"))
	for _, word := range []string{"every", "each"} {
		if strings.HasSuffix(before, word) {
			return true
		}
	}
	return false
}

func toMinutes(unit string) func(float64) float64 {
	switch {
	case strings.HasPrefix(unit, "h"):
		return func(v float64) float64 { return v * 60 }
	case strings.HasPrefix(unit, "s"):
		return func(v float64) float64 { return v / 60 }
	}
	return func(v float64) float64 { return v }
}

func measurement(text, lowRaw, highRaw string, conv func(float64) float64) (Measurement, error) {
	high, ok := recipe.ParseNumber(highRaw)
	if !ok {
		return Measurement{}, fmt.Errorf("cannot read %q: bad number %q", text, highRaw)
	}
	low := high
	if lowRaw != "" {
		if low, ok = recipe.ParseNumber(lowRaw); !ok {
			return Measurement{}, fmt.Errorf("cannot read %q: bad number %q", text, lowRaw)
		}
		if low > high {
			return Measurement{}, fmt.Errorf("cannot read %q: range is reversed", text)
		}
	}
	return Measurement{Low: conv(low), High: conv(high), Text: strings.TrimSpace(text)}, nil
}

package technique

import (
	"fmt"
	"strings"
)

// Intent classifies the purpose of a step within the recipe.
type Intent uint8

const (
	IntentUnknown Intent = iota
	IntentPreparation
	IntentCooking
	IntentSetting
	IntentFinishing
)

var intentNames = map[Intent]string{
	IntentPreparation: "preparation",
	IntentCooking:     "cooking",
	IntentSetting:     "setting",
	IntentFinishing:   "finishing",
}

// ParseIntent resolves an intent tag case-insensitively.
func ParseIntent(raw string) (Intent, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	for i, name := range intentNames {
		if name == key {
			return i, nil
		}
	}
	if key == "" {
		return IntentUnknown, fmt.Errorf("intent tag is empty")
	}
	return IntentUnknown, fmt.Errorf("unrecognized intent %q", raw)
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

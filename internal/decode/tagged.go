package decode

import "eventize/internal/event"

// asTagged recognizes the explicit form {"category": C, "data": D} and
// builds the distinct Tagged type for it. Extra keys are ignored; the
// explicit pair wins over plain-map pass-through.
func asTagged(raw map[string]any) (event.Tagged, bool) {
	category, ok := raw["category"].(string)
	if !ok || category == "" {
		return event.Tagged{}, false
	}
	data, ok := raw["data"].(map[string]any)
	if !ok {
		return event.Tagged{}, false
	}
	return event.Tagged{Category: category, Data: data}, true
}

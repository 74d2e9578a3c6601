package decode

import (
	"encoding/json"
	"strings"
)

// Line turns one raw log line into a value the normalizer accepts. JSON
// object lines decode to a map (or to event.Tagged when they carry the
// explicit category/data pair); everything else wraps as a message map so
// no bare scalar ever reaches the normalizer.
func Line(line string) any {
	s := strings.TrimSpace(line)

	var raw map[string]any
	if !tryUnmarshalJSON(s, &raw) {
		return map[string]any{"message": line}
	}

	if tagged, ok := asTagged(raw); ok {
		return tagged
	}
	return raw
}

func tryUnmarshalJSON(s string, raw *map[string]any) bool {
	if s == "" || s[0] != '{' {
		return false
	}
	return json.Unmarshal([]byte(s), raw) == nil
}

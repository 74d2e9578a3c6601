package casing

import (
	"strings"
	"unicode"
)

// Words splits a PascalCase identifier into its word fragments, keeping the
// original casing. An uppercase run is treated as a single acronym, except
// that its last letter starts the next word when lowercase follows
// ("HTTPServer" -> ["HTTP", "Server"]). Digits attach to the word they
// follow. Concatenating the fragments reproduces the identifier.
//
// The identifier must be non-empty; Words returns nil otherwise.
func Words(identifier string) []string {
	runes := []rune(identifier)
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			continue
		}
		// A new word starts at an uppercase letter unless it extends an
		// uppercase run that is not followed by a lowercase letter.
		if unicode.IsUpper(runes[i-1]) && (i+1 >= len(runes) || !unicode.IsLower(runes[i+1])) {
			continue
		}
		if i > start {
			words = append(words, string(runes[start:i]))
		}
		start = i
	}
	words = append(words, string(runes[start:]))
	return words
}

// Snake lowercases the fragments of a PascalCase identifier and joins them
// with underscores ("OrderPlaced" -> "order_placed", "HTTPServer" ->
// "http_server").
func Snake(identifier string) string {
	words := Words(identifier)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "_")
}

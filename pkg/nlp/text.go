package nlp

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)
var multiSpace = regexp.MustCompile(`\s+`)

// Normalize lowercases a string and replaces every non-word run with a single
// space. A "word" is a-z or 0-9, which is enough for goal/domain matching.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsPhrase reports whether a normalized phrase occurs in normalized text
// as whole words. Example: "web" matches "full stack web development" but not
// "webassembly internals".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	// pad with spaces to enforce word boundaries
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// ContainsAny reports whether any of the given phrases occurs in the text.
// Phrases are normalized before matching.
func ContainsAny(normalizedText string, phrases ...string) bool {
	for _, p := range phrases {
		if ContainsPhrase(normalizedText, Normalize(p)) {
			return true
		}
	}
	return false
}

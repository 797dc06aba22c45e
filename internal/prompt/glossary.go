package prompt

import "strings"

// FilterGlossary returns the glossary entries whose source word occurs in
// sentence, either as a whole token or as a substring. Matching is
// case-insensitive and deduplicated on the lower-cased source word; the
// first qualifying entry wins and input order is kept.
func FilterGlossary(sentence string, glossary []GlossaryEntry) []GlossaryEntry {
	lowered := strings.ToLower(sentence)
	tokens := tokenSet(sentence)

	seen := make(map[string]struct{})
	var relevant []GlossaryEntry
	for _, entry := range glossary {
		key := strings.ToLower(strings.TrimSpace(entry.Source))
		if _, dup := seen[key]; dup {
			continue
		}
		_, isToken := tokens[key]
		if !isToken && !strings.Contains(lowered, key) {
			continue
		}
		seen[key] = struct{}{}
		relevant = append(relevant, entry)
	}
	return relevant
}

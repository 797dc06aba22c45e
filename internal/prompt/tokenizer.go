package prompt

import (
	"regexp"
	"strings"
)

// bengaliRun matches a maximal run of characters from the Bengali block.
var bengaliRun = regexp.MustCompile(`[\x{0980}-\x{09FF}]+`)

// Tokenize returns every maximal run of Bengali-script characters in text,
// in order of appearance. Anything outside U+0980..U+09FF is a separator.
func Tokenize(text string) []string {
	return bengaliRun.FindAllString(text, -1)
}

// tokenSet lower-cases text and returns its tokens as a set.
func tokenSet(text string) map[string]struct{} {
	tokens := Tokenize(strings.ToLower(text))
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

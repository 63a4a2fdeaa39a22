package nlp

import (
	"strings"
	"unicode"
)

// Tokenize normalizes an utterance into lowercase word tokens. Punctuation
// separates tokens; digits are kept so numeric utterances remain
// classifiable.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCaseWords upper-cases the first letter and lower-cases the rest of
// every word, where words are separated by single spaces. Runs of spaces
// produce empty words and are kept.
func TitleCaseWords(text string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)

	words := strings.Split(text, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + lower.String(w[size:])
	}
	return strings.Join(words, " ")
}

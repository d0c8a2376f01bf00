package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxKeyRunes is the length, in runes, of the longest table key.
var maxKeyRunes = func() int {
	n := 1
	for k := range transliterations {
		n = max(n, utf8.RuneCountInString(k))
	}
	return n
}()

// Normalize replaces every character or character sequence found in the
// transliteration table with its ASCII equivalent, scanning left to right
// and preferring the longest match. Other characters, and bytes that are not
// valid UTF-8, are kept as they are.
func Normalize(text string) string {
	if isASCII(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	ends := make([]int, 0, maxKeyRunes)
	for i := 0; i < len(text); {
		// byte offsets just past each of the next maxKeyRunes runes
		ends = ends[:0]
		for j := i; j < len(text) && len(ends) < maxKeyRunes; {
			_, size := utf8.DecodeRuneInString(text[j:])
			j += size
			ends = append(ends, j)
		}

		next := ends[0]
		for n := len(ends) - 1; n >= 0; n-- {
			if repl, ok := transliterations[text[i:ends[n]]]; ok {
				b.WriteString(repl)
				next = ends[n]
				break
			}
			if n == 0 {
				b.WriteString(text[i:next])
			}
		}
		i = next
	}
	return b.String()
}

// Fold normalizes text and then strips any combining marks left over, so
// letters missing from the table still lose their accents.
func Fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, Normalize(text))
	if err != nil {
		return Normalize(text)
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

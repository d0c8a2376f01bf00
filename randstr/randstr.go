// Package randstr generates random strings drawn from predefined or literal
// character sets.
//
// The package-level generator reads from the math/rand/v2 top-level source
// and is safe for concurrent use. It is not suitable for secrets.
package randstr

import (
	"math/rand/v2"
	"strings"

	"utilkit/internal/argerr"
)

// ErrInvalidArgument is wrapped by every error returned from this package.
var ErrInvalidArgument = argerr.ErrInvalidArgument

type options struct {
	rng *rand.Rand
}

// Option configures a single generation call.
type Option func(*options)

// WithRand draws from r instead of the top-level source. r is not safe for
// concurrent use, so neither is a call sharing it.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// Generate returns a random string of length runes drawn from the union of
// the named sets. With allowDuplicates false every rune in the result is
// distinct, which requires at least length distinct runes across the sets.
func Generate(length int, sets []string, allowDuplicates bool, opts ...Option) (string, error) {
	if len(sets) == 0 {
		return "", argerr.Errorf("randstr.Generate", "no character sets given")
	}

	var b strings.Builder
	for _, name := range sets {
		chars, ok := charSets[name]
		if !ok {
			return "", argerr.Errorf("randstr.Generate", "unknown character set %q", name)
		}
		b.WriteString(chars)
	}
	return generate("randstr.Generate", length, b.String(), allowDuplicates, opts)
}

// GenerateFrom is Generate over a literal alphabet.
func GenerateFrom(length int, alphabet string, allowDuplicates bool, opts ...Option) (string, error) {
	return generate("randstr.GenerateFrom", length, alphabet, allowDuplicates, opts)
}

func generate(op string, length int, alphabet string, allowDuplicates bool, opts []Option) (string, error) {
	if length < 0 {
		return "", argerr.Errorf(op, "negative length %d", length)
	}
	if length == 0 {
		return "", nil
	}

	runes := []rune(alphabet)
	if len(runes) == 0 {
		return "", argerr.Errorf(op, "empty alphabet")
	}
	if !allowDuplicates {
		if distinct := countDistinct(runes); distinct < length {
			return "", argerr.Errorf(op, "cannot pick %d unique characters from %d", length, distinct)
		}
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	intN := rand.IntN
	if o.rng != nil {
		intN = o.rng.IntN
	}

	out := make([]rune, 0, length)
	var seen map[rune]struct{}
	if !allowDuplicates {
		seen = make(map[rune]struct{}, length)
	}
	for len(out) < length {
		r := runes[intN(len(runes))]
		if seen != nil {
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
		}
		out = append(out, r)
	}
	return string(out), nil
}

func countDistinct(runes []rune) int {
	set := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		set[r] = struct{}{}
	}
	return len(set)
}

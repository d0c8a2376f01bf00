// Package uuidutil converts UUID strings between the dashed 8-4-4-4-12 form
// and the compact 32 character form.
package uuidutil

import (
	"strings"

	"github.com/google/uuid"
)

// dash positions in the 36 character form
var dashes = [...]int{8, 13, 18, 23}

// AddDashes inserts dashes into a compact UUID at the 8-4-4-4-12 group
// boundaries. Strings shorter than 32 characters are returned unchanged; the
// content is not validated.
func AddDashes(s string) string {
	if len(s) < 32 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	b.WriteString(s[:8])
	b.WriteByte('-')
	b.WriteString(s[8:12])
	b.WriteByte('-')
	b.WriteString(s[12:16])
	b.WriteByte('-')
	b.WriteString(s[16:20])
	b.WriteByte('-')
	b.WriteString(s[20:])
	return b.String()
}

// StripDashes removes the four group dashes from a dashed UUID. Strings that
// are too short or have no dash at one of the boundaries are returned
// unchanged.
func StripDashes(s string) string {
	if len(s) < 36 {
		return s
	}
	for _, i := range dashes {
		if s[i] != '-' {
			return s
		}
	}
	return s[:8] + s[9:13] + s[14:18] + s[19:23] + s[24:]
}

// Canonical parses s in any form accepted by uuid.Parse, including the
// compact form, and returns it in lower-case dashed form.
func Canonical(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// NewCompact returns a new random (version 4) UUID without dashes.
func NewCompact() string {
	return StripDashes(uuid.NewString())
}

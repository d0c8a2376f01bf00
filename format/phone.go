package format

import "regexp"

var phonePattern = regexp.MustCompile(`^1?(\d{3})(\d{3})(\d{4})$`)

// Phone formats a ten digit North American number, optionally prefixed with
// the country code 1, as "+1 (AAA) BBB-CCCC". Any other input is returned
// unchanged.
func Phone(digits string) string {
	m := phonePattern.FindStringSubmatch(digits)
	if m == nil {
		return digits
	}
	return "+1 (" + m[1] + ") " + m[2] + "-" + m[3]
}

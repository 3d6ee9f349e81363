// Package casrn validates CAS Registry Numbers with their check digit.
//
// The check digit is the last digit of a number. It equals the sum of
// the remaining digits, each multiplied by its position counted from the
// right starting at 1, modulo 10.
package casrn

import (
	"regexp"
	"strings"
)

// casrnRe matches a number with or without CAS hyphens. Anything else,
// such as NOCAS_ identifiers, is not a registry number.
var casrnRe = regexp.MustCompile(`^(\d{2,7})-?(\d{2})-?(\d)$`)

// Validate checks a registry number. It returns the number in CAS
// hyphenation ("50-00-0") and true if the input has the shape of a
// registry number and its check digit is correct. Otherwise the trimmed
// input is returned with false.
func Validate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	m := casrnRe.FindStringSubmatch(s)
	if m == nil {
		return s, false
	}

	nums := m[1] + m[2]
	var sum int
	for i := range len(nums) {
		sum += int(nums[i]-'0') * (len(nums) - i)
	}
	if sum%10 != int(m[3][0]-'0') {
		return s, false
	}
	return m[1] + "-" + m[2] + "-" + m[3], true
}

// IsValid returns true if s is a registry number with a correct check
// digit.
func IsValid(s string) bool {
	_, ok := Validate(s)
	return ok
}

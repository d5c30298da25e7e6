// Package validate holds the pure field validators the façade applies before
// any store access. Each predicate is side-effect free, and empty input is
// always invalid — never an error or a panic.
package validate

import (
	"regexp"
	"strings"
)

var (
	// Lowercase local part starting with a letter, fixed provider domain.
	emailPattern = regexp.MustCompile(`^[a-z][a-z0-9]*@gmail\.com$`)
	// Exactly 10 digits, first digit 6-9.
	mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	// Letters and whitespace only.
	namePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

var bloodTypes = map[string]struct{}{
	"A+": {}, "A-": {},
	"B+": {}, "B-": {},
	"AB+": {}, "AB-": {},
	"O+": {}, "O-": {},
}

var seriousnessLevels = map[string]struct{}{
	"LOW": {}, "MODERATE": {}, "HIGH": {},
}

var genders = map[string]struct{}{
	"MALE": {}, "FEMALE": {}, "OTHER": {},
}

// Email reports whether s is a well-formed address on the supported provider.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// BloodType reports whether s names one of the eight ABO/Rh types,
// case-insensitively.
func BloodType(s string) bool {
	_, ok := bloodTypes[strings.ToUpper(s)]
	return ok
}

// Mobile reports whether s is a 10-digit number starting with 6-9.
func Mobile(s string) bool {
	return mobilePattern.MatchString(s)
}

// Seriousness reports whether s names a valid urgency level,
// case-insensitively.
func Seriousness(s string) bool {
	_, ok := seriousnessLevels[strings.ToUpper(s)]
	return ok
}

// Gender reports whether s names a valid gender, case-insensitively.
func Gender(s string) bool {
	_, ok := genders[strings.ToUpper(s)]
	return ok
}

// Name reports whether s is non-empty after trimming and contains only
// letters and whitespace.
func Name(s string) bool {
	return strings.TrimSpace(s) != "" && namePattern.MatchString(s)
}

package strings

import "strconv"

// Pluralize picks the singular or plural form for count
func Pluralize(singular, plural string, count int) string {
	if count == 1 {
		return singular
	}
	return plural
}

// Count renders count followed by the matching form, e.g. "1 member", "3 members"
func Count(count int, singular, plural string) string {
	return strconv.Itoa(count) + " " + Pluralize(singular, plural, count)
}

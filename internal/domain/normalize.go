package domain

import (
	"strings"
	"unicode/utf8"
)

// NormalizeName prepares a domain name for storage and lookup:
// surrounding whitespace and a trailing root dot are dropped, letters are lowercased.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".")
	return strings.ToLower(name)
}

// Label returns the substring of name before the first dot.
// A name without a dot is its own label.
func Label(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// LabelLength counts the label's code points, so "бизнес.рф" has length 6.
func LabelLength(name string) int {
	return utf8.RuneCountInString(Label(name))
}

// ExtensionOf returns everything from the first dot onward ("a.spb.ru" -> ".spb.ru").
// Returns "" when name has no dot. Used only when seeding records that lack
// an explicit extension.
func ExtensionOf(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}

package catalog

import "strings"

// LengthBucket constrains the label length of a listing.
type LengthBucket string

const (
	LengthAny      LengthBucket = ""
	LengthTwo      LengthBucket = "2"
	LengthThree    LengthBucket = "3"
	LengthFour     LengthBucket = "4"
	LengthFive     LengthBucket = "5"
	LengthFivePlus LengthBucket = "5+"
)

// ParseLength maps a query token to a bucket. Unknown tokens mean no constraint.
func ParseLength(raw string) LengthBucket {
	// An unescaped '+' in a query string decodes to a space.
	if raw == "5 " {
		return LengthFivePlus
	}
	switch strings.TrimSpace(raw) {
	case "2":
		return LengthTwo
	case "3":
		return LengthThree
	case "4":
		return LengthFour
	case "5":
		return LengthFive
	case "5+", "5plus":
		return LengthFivePlus
	}
	return LengthAny
}

// Match reports whether a label of n code points falls into the bucket.
func (b LengthBucket) Match(n int) bool {
	switch b {
	case LengthTwo:
		return n == 2
	case LengthThree:
		return n == 3
	case LengthFour:
		return n == 4
	case LengthFive:
		return n == 5
	case LengthFivePlus:
		return n >= 5
	}
	return true
}

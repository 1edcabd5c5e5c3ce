package core

import "strconv"

// Answer is the optional result of one puzzle part.
// A zero Answer is "absent" and means the part is not implemented yet,
// which is distinct from a computed zero.
type Answer struct {
	Value uint64
	Set   bool
}

// Some returns a present answer holding v.
func Some(v uint64) Answer {
	return Answer{Value: v, Set: true}
}

// None returns an absent answer.
func None() Answer {
	return Answer{}
}

// Equal reports whether both answers are present and hold the same value.
func (a Answer) Equal(other Answer) bool {
	return a.Set && other.Set && a.Value == other.Value
}

// String returns the decimal value, or "-" when absent.
func (a Answer) String() string {
	if !a.Set {
		return "-"
	}
	return strconv.FormatUint(a.Value, 10)
}

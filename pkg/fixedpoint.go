package trigger

import "golang.org/x/exp/constraints"

// Field widths of the hardware words.
const (
	EtBits       = 11
	MaxTOBEt     = 1<<EtBits - 1
	LocalEtaBits = 5
	LocalPhiBits = 4
)

// SaturatingAdd adds b to a and clamps the result to limit. The second
// return value reports whether clamping happened. Inputs are expected to be
// non-negative.
func SaturatingAdd[T constraints.Integer](a, b, limit T) (T, bool) {
	if b > limit || a > limit-b {
		return limit, true
	}
	return a + b, false
}

// SaturatingSub subtracts b from a, clamping at zero.
func SaturatingSub[T constraints.Integer](a, b T) T {
	if b >= a {
		return 0
	}
	return a - b
}

// Saturate clamps v into [0, limit].
func Saturate[T constraints.Integer](v, limit T) (T, bool) {
	if v > limit {
		return limit, true
	}
	if v < 0 {
		return 0, false
	}
	return v, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func CheckBit(mask uint32, pos uint) bool {
	return (mask & (1 << pos)) != 0
}

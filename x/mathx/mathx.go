// Package mathx holds small integer helpers shared by the drivers.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]; swapped bounds are accepted.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// Abs of a signed integer
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// RoundDiv divides a by b rounding to nearest. Division by zero yields 0.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// Scale maps v in [0, max] onto [0, span] with 64-bit intermediates,
// clamping v to max first.
func Scale[T constraints.Unsigned](v, max, span T) T {
	if max == 0 {
		return 0
	}
	v = Clamp(v, 0, max)
	return T(uint64(v) * uint64(span) / uint64(max))
}

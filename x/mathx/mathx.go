package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// Overlaps reports whether the closed ranges [aLo,aHi] and [bLo,bHi]
// share at least one point. Each range is normalised first.
func Overlaps[T constraints.Ordered](aLo, aHi, bLo, bHi T) bool {
	if aHi < aLo {
		aLo, aHi = aHi, aLo
	}
	if bHi < bLo {
		bLo, bHi = bHi, bLo
	}
	return aLo <= bHi && bLo <= aHi
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

package weight

import "math"

// Number is the set of types accepted as edge and path weights.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Zero returns the additive identity of W.
func Zero[W Number]() W {
	var zero W

	return zero
}

// Infinity returns the sentinel that compares greater than every finite W.
// Floating point types use +Inf; integer types use their maximum value.
func Infinity[W Number]() W {
	if isFloat[W]() {
		return W(math.Inf(1))
	}
	// Non-constant conversions truncate: a 32-bit W turns MaxInt64 into -1.
	var wide int64 = math.MaxInt64
	if w := W(wide); w > 0 {
		return w
	}
	var narrow int64 = math.MaxInt32

	return W(narrow)
}

// IsInf reports whether w is (or exceeds) the Infinity sentinel of W.
func IsInf[W Number](w W) bool {
	return w >= Infinity[W]()
}

// Add returns a+b, saturating at Infinity.
//
// Infinity + x == Infinity for every x, and integer sums that would overflow
// clamp to Infinity. Negative integer overflow clamps to the minimum value.
func Add[W Number](a, b W) W {
	inf := Infinity[W]()
	if a >= inf || b >= inf {
		return inf
	}
	if isFloat[W]() {
		return a + b
	}
	sum := a + b
	switch {
	case b > 0 && sum < a: // wrapped past max
		return inf
	case b < 0 && sum > a: // wrapped past min
		return -inf - 1
	}

	return sum
}

// Less reports whether a orders strictly before b.
// NaN never orders before anything, so it never wins a minimum.
func Less[W Number](a, b W) bool { return a < b }

// Sum folds ws with Add, starting from Zero.
func Sum[W Number](ws ...W) W {
	total := Zero[W]()
	for _, w := range ws {
		total = Add(total, w)
	}

	return total
}

// isFloat distinguishes floating point instantiations: 1/2 truncates to zero
// only for integers.
func isFloat[W Number]() bool {
	one := W(1)

	return one/2 != 0
}

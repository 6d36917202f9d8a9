package math

import "golang.org/x/exp/constraints"

// Clamp returns f limited to the range [low, high].
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// ClampVec2 clamps each component of v into the box spanned by low and high.
func ClampVec2(v, low, high Vec2) Vec2 {
	return Vec2{
		X: Clamp(v.X, low.X, high.X),
		Y: Clamp(v.Y, low.Y, high.Y),
	}
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign[T constraints.Signed | constraints.Float](f T) T {
	if f < 0 {
		return -1
	}
	return 1
}

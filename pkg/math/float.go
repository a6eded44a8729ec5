package math

import gomath "math"

// Epsilon is the tolerance used for all approximate float comparisons in
// geometric code.
const Epsilon = 1e-5

// Approx reports whether a and b are equal within Epsilon.
func Approx(a, b float64) bool {
	return gomath.Abs(a-b) < Epsilon
}

// Le reports whether a <= b, accepting equality within Epsilon.
func Le(a, b float64) bool {
	return a < b || Approx(a, b)
}

// Ge reports whether a >= b, accepting equality within Epsilon.
func Ge(a, b float64) bool {
	return a > b || Approx(a, b)
}

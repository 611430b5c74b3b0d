package linear

import (
	"math"
	"strings"
)

const degenerateThreshold = 1e-12

// TrySolve solves an equation of the form "<linear> = <linear>" for x.
// ok is false when the equation does not parse, is not linear, or has no
// unique solution.
func TrySolve(equation string) (float64, bool) {
	sides := strings.Split(equation, "=")
	if len(sides) != 2 {
		return 0, false
	}

	left, ok := EvalExpr(sides[0])
	if !ok {
		return 0, false
	}
	right, ok := EvalExpr(sides[1])
	if !ok {
		return 0, false
	}

	a := left.AX - right.AX
	b := right.B - left.B
	if math.Abs(a) < degenerateThreshold {
		return 0, false
	}

	x := b / a
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	if x == 0 {
		// drop the sign of -0
		x = 0
	}
	return x, true
}

package answer

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultEpsilon is the relative tolerance used by NearlyEqual.
const DefaultEpsilon = 1e-9

var numericLiteralPattern = regexp.MustCompile(`^[-+]?([0-9]+(\.[0-9]+)?|[0-9]+/[0-9]+)$`)

// IsNumericLiteralLike reports whether s is exactly an integer, a decimal or a
// fraction, optionally signed. Exponents and surrounding text are not accepted.
func IsNumericLiteralLike(s string) bool {
	return numericLiteralPattern.MatchString(s)
}

// ParseNumericLiteral parses an integer, decimal or numerator/denominator literal.
// ok is false when s is not such a literal, the denominator is zero, or the
// result is not finite.
func ParseNumericLiteral(s string) (value float64, ok bool) {
	if !IsNumericLiteralLike(s) {
		return 0, false
	}

	sign := 1.0
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}

	if numerator, denominator, found := strings.Cut(s, "/"); found {
		n, err := strconv.ParseFloat(numerator, 64)
		if err != nil {
			return 0, false
		}
		d, err := strconv.ParseFloat(denominator, 64)
		if err != nil || d == 0 {
			return 0, false
		}
		value = sign * n / d
	} else {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		value = sign * v
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// NearlyEqual compares a and b with DefaultEpsilon as a relative tolerance.
func NearlyEqual(a, b float64) bool {
	return NearlyEqualEps(a, b, DefaultEpsilon)
}

// NearlyEqualEps reports |a-b| <= eps * max(1, |a|, |b|).
func NearlyEqualEps(a, b, eps float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= eps*scale
}

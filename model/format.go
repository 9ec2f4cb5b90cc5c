package model

import (
	"math"
	"strconv"
	"strings"
)

// Notation switches to exponent form outside [1e-4, 1e16).
const (
	fixedLow  = 1e-4
	fixedHigh = 1e16
)

// FormatCoefficient renders v the way coefficients appear in model strings
// and alias equations: integral values keep a trailing ".0" (2.0), very small
// or very large magnitudes use exponent form (1e-05, 1e16). Positive exponents
// carry no '+', since '+' separates model terms.
//
// digits is the number of significant digits; -1 selects the shortest
// representation that parses back to exactly v.
func FormatCoefficient(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if digits > 0 {
		// round to the requested significant digits first
		v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'e', digits-1, 64), 64)
	}
	if abs := math.Abs(v); abs != 0 && (abs < fixedLow || abs >= fixedHigh) {
		return strings.Replace(strconv.FormatFloat(v, 'e', -1, 64), "e+", "e", 1)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}

// Package numeric turns user-entered text into numbers.
//
// Every helper follows the same contract: input that is empty, malformed,
// or not a finite number coerces to zero. Nothing in this package returns
// an error.
package numeric

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// IsBlank reports whether s holds nothing but whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Decimal parses s into a decimal. Blank or malformed input, and values
// too large for a float64, yield zero.
func Decimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	// float64 covers roughly 1e-308 to 1e308; skip the conversion for
	// exponents far outside that.
	if mag := int64(len(d.Coefficient().String())) + int64(d.Exponent()); mag > maxMagnitude || mag < -maxMagnitude {
		return decimal.Zero
	}
	if f, _ := d.Float64(); !finite(f) {
		return decimal.Zero
	}
	return d
}

const maxMagnitude = 400

// Parse converts user-entered text to a float64, returning 0 for blank,
// malformed or out of range input.
func Parse(s string) float64 {
	return FromDecimal(Decimal(s))
}

// FromFloat is decimal.NewFromFloat with NaN and ±Inf mapped to zero.
func FromFloat(v float64) decimal.Decimal {
	if !finite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// RoundTo rounds v to the nearest multiple of step, half away from zero.
// A step of zero or less leaves v untouched.
func RoundTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return FromDecimal(RoundToDecimal(FromFloat(v), FromFloat(step)))
}

// RoundToDecimal is RoundTo for callers already working in decimal.
func RoundToDecimal(v, step decimal.Decimal) decimal.Decimal {
	if !step.IsPositive() {
		return v
	}
	return v.Div(step).Round(0).Mul(step)
}

// RoundPlaces rounds v to the given number of decimal places, half away
// from zero.
func RoundPlaces(v float64, places int32) float64 {
	return FromDecimal(FromFloat(v).Round(places))
}

// FromDecimal returns the float64 nearest to d, or 0 when d is beyond
// float64 range.
func FromDecimal(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	if !finite(f) {
		return 0
	}
	return f
}

// Format renders v in its shortest decimal form: 2.5, 10, 0.25.
func Format(v float64) string {
	return FromFloat(v).String()
}

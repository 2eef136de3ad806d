// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/bizforge/business-forecast/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Monetary outputs are rounded at the point of construction; intermediate
// compounding stays unrounded.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// Clamp bounds a value to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// SumRounded sums a slice and rounds the result to currency precision.
func SumRounded(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return Round(total)
}

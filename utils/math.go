package utils

import "math"

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	return math.Min(a, b)
}

// WithinTolerance reports whether two monetary amounts are equal within
// the balance rounding tolerance.
func WithinTolerance(a, b float64) bool {
	return math.Abs(a-b) <= BalanceTolerance
}

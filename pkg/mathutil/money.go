// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/paisawise/paisawise/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons and for presentation boundaries;
// intermediate calculator math keeps full float64 precision.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(val float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(val*shift) / shift
}

// IsZero checks if a value is effectively zero (within currency tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// IsNegative checks if a value is negative (less than negative tolerance)
func IsNegative(val float64) bool {
	return val < -constants.CurrencyTolerance
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

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// MonthlyRate converts an annual percentage rate to a monthly decimal rate.
func MonthlyRate(annualPercent float64) float64 {
	return annualPercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// PeriodicRate converts an annual percentage rate to a decimal rate for the
// given number of compounding periods per year.
func PeriodicRate(annualPercent float64, periodsPerYear int) float64 {
	return annualPercent / (constants.PercentageMultiplier * float64(periodsPerYear))
}

// CompoundFactor returns (1+rate)^periods for a decimal periodic rate.
func CompoundFactor(rate float64, periods float64) float64 {
	return math.Pow(1.0+rate, periods)
}

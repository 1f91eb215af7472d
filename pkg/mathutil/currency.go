// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/accounting-tutor/pkg/constants"
)

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * percentage / constants.PercentageMultiplier
}

// SimpleInterest returns principal × rate × period / (100 × basis), where
// basis is the number of periods per year the rate is quoted over.
func SimpleInterest(principal, ratePercent, period, basis float64) float64 {
	return (principal * ratePercent * period) / (constants.PercentageMultiplier * basis)
}

// Sum adds all values in order.
func Sum(values ...float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

package format

import (
	"math"
	"math/big"
	"strings"
)

// exactDigits is enough fractional digits to print any float64 exactly.
const exactDigits = 1100

// Fixed renders val with exactly decimals fractional digits. Rounding is
// half-up on the exact binary value, so 0.125 becomes "0.13" while 1.005
// (stored as 1.00499...) becomes "1.00". NaN and the infinities render as
// "NaN", "Infinity" and "-Infinity".
func Fixed(val float64, decimals int) string {
	switch {
	case math.IsNaN(val):
		return "NaN"
	case math.IsInf(val, 1):
		return "Infinity"
	case math.IsInf(val, -1):
		return "-Infinity"
	}
	if decimals < 0 {
		decimals = 0
	}

	sign := ""
	if val < 0 {
		sign = "-"
	}

	exact := new(big.Float).SetFloat64(math.Abs(val)).Text('f', exactDigits)
	intPart, fracPart, _ := strings.Cut(exact, ".")

	digits := new(big.Int)
	digits.SetString(intPart+fracPart[:decimals], 10)
	if fracPart[decimals] >= '5' {
		digits.Add(digits, big.NewInt(1))
	}

	text := digits.String()
	if decimals == 0 {
		return sign + text
	}
	if len(text) <= decimals {
		text = strings.Repeat("0", decimals-len(text)+1) + text
	}
	split := len(text) - decimals
	return sign + text[:split] + "." + text[split:]
}

// Package format turns calculator values into display strings.
package format

import (
	"math"
	"strings"

	"github.com/iwvelando/accounting-tutor/pkg/constants"
)

// Currency returns a money string with the rupee sign and thousands separators (e.g., "-₹1,234.56").
// Non-finite amounts are returned without a symbol.
func Currency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Fixed(amount, constants.DisplayDecimals)
	}
	formatted := groupThousands(Fixed(math.Abs(amount), constants.DisplayDecimals))
	if amount < 0 {
		return "-" + constants.CurrencySymbol + formatted
	}
	return constants.CurrencySymbol + formatted
}

// NumericCurrency returns a money string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Fixed(amount, constants.DisplayDecimals)
	}
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + groupThousands(Fixed(math.Abs(amount), constants.DisplayDecimals))
}

func groupThousands(formatted string) string {
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := ""
	if len(parts) == 2 {
		decPart = "." + parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + decPart
}

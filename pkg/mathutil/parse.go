package mathutil

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const infinityLiteral = "Infinity"

// ParseFloat reads the longest numeric prefix of raw after leading
// whitespace, the way a browser number field hands values to parseFloat.
// "12abc" yields 12, "1e" yields 1 and "-Infinity" yields negative infinity.
// The boolean is false when no number could be read at all.
func ParseFloat(raw string) (float64, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], infinityLiteral) {
		if i == 1 && s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	val, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// Out-of-range literals still carry the saturated value.
		if errors.Is(err, strconv.ErrRange) {
			return val, true
		}
		return 0, false
	}
	return val, true
}

// ParseOrZero parses raw leniently and substitutes 0 for anything that does
// not read as a number. It never fails.
func ParseOrZero(raw string) float64 {
	return ParseOr(raw, 0)
}

// ParseOr parses raw leniently and substitutes fallback when the result is
// missing, NaN or zero. A typed zero therefore also selects the fallback.
func ParseOr(raw string, fallback float64) float64 {
	val, ok := ParseFloat(raw)
	if !ok || math.IsNaN(val) || val == 0 {
		return fallback
	}
	return val
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

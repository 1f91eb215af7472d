package mathutil

import (
	"math"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{"Integer", "10000", 10000, true},
		{"Decimal", "12.5", 12.5, true},
		{"Leading whitespace", "  42", 42, true},
		{"Trailing garbage", "12abc", 12, true},
		{"Leading dot", ".5", 0.5, true},
		{"Negative leading dot", "-.5", -0.5, true},
		{"Trailing dot", "5.", 5, true},
		{"Explicit plus", "+7", 7, true},
		{"Exponent", "1e3", 1000, true},
		{"Dangling exponent", "1e", 1, true},
		{"Dangling signed exponent", "2E-", 2, true},
		{"Thousands separator stops the number", "1,000", 1, true},
		{"Hex is not a number", "0x10", 0, true},
		{"Empty", "", 0, false},
		{"Whitespace only", "   ", 0, false},
		{"Letters", "abc", 0, false},
		{"Lone sign", "-", 0, false},
		{"Lone dot", ".", 0, false},
		{"Lowercase infinity", "infinity", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFloat(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseFloat(%q) ok = %v, expected %v", tt.input, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("ParseFloat(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFloatInfinity(t *testing.T) {
	tests := map[string]int{
		"Infinity":   1,
		"+Infinity":  1,
		"-Infinity":  -1,
		" Infinityx": 1,
		"1e400":      1,
		"-1e400":     -1,
	}

	for input, sign := range tests {
		got, ok := ParseFloat(input)
		if !ok {
			t.Fatalf("ParseFloat(%q) reported no number", input)
		}
		if !math.IsInf(got, sign) {
			t.Errorf("ParseFloat(%q) = %v, expected infinity with sign %d", input, got, sign)
		}
	}
}

func TestParseOrZero(t *testing.T) {
	tests := map[string]float64{
		"":      0,
		"abc":   0,
		"-0":    0,
		"15.25": 15.25,
		"3kg":   3,
	}

	for input, expected := range tests {
		got := ParseOrZero(input)
		if got != expected || math.Signbit(got) {
			t.Errorf("ParseOrZero(%q) = %v, expected %v", input, got, expected)
		}
	}
}

func TestParseOr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback float64
		expected float64
	}{
		{"Empty uses fallback", "", 50, 50},
		{"Zero uses fallback", "0", 50, 50},
		{"Garbage uses fallback", "n/a", 50, 50},
		{"Value wins", "60", 50, 60},
		{"Negative value wins", "-10", 50, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseOr(tt.input, tt.fallback); got != tt.expected {
				t.Errorf("ParseOr(%q, %v) = %v, expected %v", tt.input, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestSimpleInterest(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		period    float64
		basis     float64
		expected  float64
	}{
		{"Quarter at twelve percent", 5000, 12, 3, 12, 150},
		{"Ninety days", 10000, 12, 90, 365, 10000.0 * 12 * 90 / 36500},
		{"Zero principal", 0, 12, 90, 365, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimpleInterest(tt.principal, tt.rate, tt.period, tt.basis)
			if got != tt.expected {
				t.Errorf("SimpleInterest() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("expected 1.5 to be finite")
	}
	if IsFinite(math.NaN()) {
		t.Error("expected NaN to be non-finite")
	}
	if IsFinite(math.Inf(-1)) {
		t.Error("expected -Inf to be non-finite")
	}
}

func TestApplyPercentage(t *testing.T) {
	if got := ApplyPercentage(10000, 1); got != 100 {
		t.Errorf("ApplyPercentage(10000, 1) = %v, expected 100", got)
	}
	if got := Sum(1, 2, 3.5); got != 6.5 {
		t.Errorf("Sum() = %v, expected 6.5", got)
	}
}

// Package formula holds the pure calculator arithmetic for every topic
// module. Each sub-mode is a typed input struct, a function computing a
// typed result, and a Result view listing the named outputs in display
// order. Nothing in this package keeps state between calls.
package formula

import (
	"github.com/iwvelando/accounting-tutor/pkg/constants"
	"github.com/iwvelando/accounting-tutor/pkg/format"
	"github.com/iwvelando/accounting-tutor/pkg/mathutil"
)

// Inputs maps a field name to the raw text the user typed.
type Inputs map[string]string

// Float returns the named field parsed leniently, or 0.
func (in Inputs) Float(name string) float64 {
	return mathutil.ParseOrZero(in[name])
}

// FloatOr returns the named field parsed leniently, or fallback when the
// parse yields nothing or zero.
func (in Inputs) FloatOr(name string, fallback float64) float64 {
	return mathutil.ParseOr(in[name], fallback)
}

// Line is one named output of a calculation.
type Line struct {
	Name     string
	Label    string
	Value    float64
	Decimals int
	Money    bool
}

// Display formats the value for presentation.
func (l Line) Display() string {
	return format.Fixed(l.Value, l.Decimals)
}

// Result is the ordered set of outputs produced by one evaluation.
type Result struct {
	Lines []Line
	Flags map[string]bool
}

// Value returns the raw value of the named output.
func (r Result) Value(name string) (float64, bool) {
	for _, line := range r.Lines {
		if line.Name == name {
			return line.Value, true
		}
	}
	return 0, false
}

// Display returns the formatted value of the named output, or "" when absent.
func (r Result) Display(name string) string {
	for _, line := range r.Lines {
		if line.Name == name {
			return line.Display()
		}
	}
	return ""
}

// Flag reports a boolean outcome such as whether a balance sheet balances.
func (r Result) Flag(name string) bool {
	return r.Flags[name]
}

func money(name, label string, value float64) Line {
	return Line{Name: name, Label: label, Value: value, Decimals: constants.DisplayDecimals, Money: true}
}

func quantity(name, label string, value float64) Line {
	return Line{Name: name, Label: label, Value: value, Decimals: constants.DisplayDecimals}
}

func units(name, label string, value float64) Line {
	return Line{Name: name, Label: label, Value: value, Decimals: 0}
}

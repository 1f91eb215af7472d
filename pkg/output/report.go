package output

import (
	"sort"

	"github.com/iwvelando/accounting-tutor/internal/formula"
	"github.com/iwvelando/accounting-tutor/internal/topic"
	"github.com/iwvelando/accounting-tutor/pkg/mathutil"
	"github.com/iwvelando/accounting-tutor/pkg/validation"
)

// Output is one rendered calculator output. Value is nil when the
// computed number is NaN or infinite; Display always carries the text.
type Output struct {
	Name     string   `json:"name" yaml:"name"`
	Label    string   `json:"label" yaml:"label"`
	Value    *float64 `json:"value" yaml:"value"`
	Display  string   `json:"display" yaml:"display"`
	Decimals int      `json:"-" yaml:"-"`
	Money    bool     `json:"-" yaml:"-"`
}

// Input is one echoed calculator input. Parsed is nil when the text parses
// to an infinity.
type Input struct {
	Name   string   `json:"name" yaml:"name"`
	Label  string   `json:"label" yaml:"label"`
	Raw    string   `json:"raw" yaml:"raw"`
	Parsed *float64 `json:"parsed" yaml:"parsed"`
}

// Report is the presentation of one evaluation.
type Report struct {
	Module     string          `json:"module" yaml:"module"`
	ModuleName string          `json:"moduleName,omitempty" yaml:"moduleName,omitempty"`
	Mode       string          `json:"mode" yaml:"mode"`
	ModeName   string          `json:"modeName,omitempty" yaml:"modeName,omitempty"`
	Inputs     []Input         `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs    []Output        `json:"outputs" yaml:"outputs"`
	Flags      map[string]bool `json:"flags" yaml:"flags,omitempty"`
	Warnings   []string        `json:"warnings" yaml:"warnings,omitempty"`
}

// NewReport builds a report for result, produced by sub-mode s of module m.
func NewReport(m topic.Module, s topic.SubMode, result formula.Result, warnings []string) Report {
	r := Report{
		Module:     m.ID,
		ModuleName: m.Name,
		Mode:       s.ID,
		ModeName:   s.Name,
		Outputs:    make([]Output, 0, len(result.Lines)),
		Flags:      map[string]bool{},
		Warnings:   []string{},
	}
	for _, line := range result.Lines {
		r.Outputs = append(r.Outputs, Output{
			Name:     line.Name,
			Label:    line.Label,
			Value:    finite(line.Value),
			Display:  line.Display(),
			Decimals: line.Decimals,
			Money:    line.Money,
		})
	}
	for name, set := range result.Flags {
		r.Flags[name] = set
	}
	r.Warnings = append(r.Warnings, warnings...)
	return r
}

// WithInputs returns a copy of r echoing the given inputs in field order.
// Supplied names that are not fields of s are appended in name order.
func (r Report) WithInputs(s topic.SubMode, in formula.Inputs) Report {
	r.Inputs = make([]Input, 0, len(in))
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		seen[f.Name] = struct{}{}
		raw, ok := in[f.Name]
		if !ok {
			continue
		}
		r.Inputs = append(r.Inputs, Input{Name: f.Name, Label: f.Label, Raw: raw, Parsed: finite(in.Float(f.Name))})
	}

	var extra []string
	for name := range in {
		if _, ok := seen[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		r.Inputs = append(r.Inputs, Input{Name: name, Label: name, Raw: in[name], Parsed: finite(in.Float(name))})
	}
	return r
}

// Evaluate runs sub-mode s of module m against in and returns the report with
// the inputs echoed and warnings for unused inputs and zero divisors.
func Evaluate(m topic.Module, s topic.SubMode, in formula.Inputs) Report {
	result := s.Evaluate(in)
	warnings := append(validation.ValidateInputs(s.Fields, in), validation.ValidateResult(result)...)
	return NewReport(m, s, result, warnings).WithInputs(s, in)
}

// NonFinite counts the outputs that are NaN or infinite.
func (r Report) NonFinite() int {
	n := 0
	for _, o := range r.Outputs {
		if o.Value == nil {
			n++
		}
	}
	return n
}

func finite(v float64) *float64 {
	if !mathutil.IsFinite(v) {
		return nil
	}
	return &v
}

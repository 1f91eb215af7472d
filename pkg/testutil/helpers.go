// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/accounting-tutor/pkg/output"
)

// FindOutput finds an output by name in the report.
// Returns a pointer to the output if found, nil otherwise.
func FindOutput(r output.Report, name string) *output.Output {
	for i := range r.Outputs {
		if r.Outputs[i].Name == name {
			return &r.Outputs[i]
		}
	}
	return nil
}

// Displays maps each output name in the report to its display string.
func Displays(r output.Report) map[string]string {
	displays := make(map[string]string, len(r.Outputs))
	for _, o := range r.Outputs {
		displays[o.Name] = o.Display
	}
	return displays
}

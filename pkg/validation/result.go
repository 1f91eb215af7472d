package validation

import (
	"fmt"
	"sort"

	"github.com/iwvelando/accounting-tutor/internal/formula"
	"github.com/iwvelando/accounting-tutor/internal/topic"
	"github.com/iwvelando/accounting-tutor/pkg/mathutil"
)

// ValidateResult returns a warning for every output that is NaN or infinite,
// which happens when a formula divides by zero. The values themselves are
// left untouched.
func ValidateResult(result formula.Result) []string {
	var warnings []string
	for _, line := range result.Lines {
		if !mathutil.IsFinite(line.Value) {
			warnings = append(warnings, fmt.Sprintf("%s is %s: a divisor in this calculation is zero",
				line.Label, line.Display()))
		}
	}
	return warnings
}

// ValidateInputs warns about supplied input names the sub-mode does not use.
func ValidateInputs(fields []topic.Field, in formula.Inputs) []string {
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.Name] = struct{}{}
	}

	var unknown []string
	for name := range in {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)

	warnings := make([]string, 0, len(unknown))
	for _, name := range unknown {
		warnings = append(warnings, fmt.Sprintf("Input '%s' is not used by this calculator and was ignored", name))
	}
	return warnings
}

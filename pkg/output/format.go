// Package output renders calculator results for the terminal and for export.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/accounting-tutor/internal/topic"
	"github.com/iwvelando/accounting-tutor/pkg/constants"
	"github.com/iwvelando/accounting-tutor/pkg/format"
)

// Render writes r to w in the named output format.
func Render(w io.Writer, outputFormat string, r Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		PrettyFormat(w, r)
		return nil
	case constants.OutputFormatCSV:
		CsvFormat(w, r)
		return nil
	case constants.OutputFormatJSON:
		return JSONFormat(w, r)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, r Report) {
	fmt.Fprintf(w, "--- %s: %s ---\n", r.ModuleName, r.ModeName)

	if len(r.Inputs) > 0 {
		p := message.NewPrinter(language.English)
		in := newTable(w)
		in.AppendHeader(table.Row{"Input", "Entered", "Used"})
		for _, input := range r.Inputs {
			used := "Infinity"
			if input.Parsed != nil {
				used = p.Sprintf("%v", *input.Parsed)
			}
			in.AppendRow(table.Row{input.Label, input.Raw, used})
		}
		in.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})
		in.Render()
		fmt.Fprintln(w)
	}

	out := newTable(w)
	out.AppendHeader(table.Row{"Output", "Amount"})
	for _, o := range r.Outputs {
		out.AppendRow(table.Row{o.Label, displayAmount(o)})
	}
	out.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight}})
	out.Render()

	for name, set := range r.Flags {
		fmt.Fprintf(w, "%s: %t\n", name, set)
	}
	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, r Report) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"module", "mode", "name", "label", "value"})
	for _, o := range r.Outputs {
		tw.AppendRow(table.Row{r.Module, r.Mode, o.Name, o.Label, o.Display})
	}
	tw.RenderCSV()
}

// JSONFormat outputs the report as indented JSON.
func JSONFormat(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// YAMLFormat returns the report, inputs included, as a YAML document.
func YAMLFormat(r Report) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode report as YAML: %w", err)
	}
	return string(data), nil
}

// ModulesFormat lists the modules and their sub-modes.
func ModulesFormat(w io.Writer, outputFormat string, modules []topic.Module) error {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"Module", "Name", "Sub-modes", "Description"})
	for _, m := range modules {
		ids := make([]string, 0, len(m.SubModes))
		for _, s := range m.SubModes {
			ids = append(ids, s.ID)
		}
		tw.AppendRow(table.Row{m.ID, m.Name, strings.Join(ids, ", "), m.Description})
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		tw.Render()
	case constants.OutputFormatCSV:
		tw.RenderCSV()
	case constants.OutputFormatJSON:
		type subMode struct {
			ID     string        `json:"id"`
			Name   string        `json:"name"`
			Fields []topic.Field `json:"fields"`
		}
		type module struct {
			ID          string    `json:"id"`
			Name        string    `json:"name"`
			Description string    `json:"description"`
			SubModes    []subMode `json:"subModes"`
		}
		list := make([]module, 0, len(modules))
		for _, m := range modules {
			entry := module{ID: m.ID, Name: m.Name, Description: m.Description}
			for _, s := range m.SubModes {
				entry.SubModes = append(entry.SubModes, subMode{ID: s.ID, Name: s.Name, Fields: s.Fields})
			}
			list = append(list, entry)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("failed to encode modules: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
	return nil
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateRows = false
	return tw
}

func displayAmount(o Output) string {
	if o.Money && o.Value != nil {
		return format.Currency(*o.Value)
	}
	return o.Display
}

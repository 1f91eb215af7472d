// Package topic describes the topic modules shown by the application: each
// module pairs reference content with a set of calculator sub-modes, and each
// sub-mode pairs an input-field schema with a pure formula.
package topic

import (
	"errors"
	"fmt"

	"github.com/iwvelando/accounting-tutor/internal/formula"
)

// Field describes one free-text numeric input of a calculator.
type Field struct {
	Name        string `json:"name" yaml:"name"`
	Label       string `json:"label" yaml:"label"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// SubMode is a named formula variant within a module.
type SubMode struct {
	ID          string
	Name        string
	Description string
	Fields      []Field
	compute     func(formula.Inputs) formula.Result
}

// NewSubMode builds a sub-mode from its schema and formula.
func NewSubMode(id, name, description string, fields []Field, compute func(formula.Inputs) formula.Result) SubMode {
	return SubMode{ID: id, Name: name, Description: description, Fields: fields, compute: compute}
}

// Evaluate parses the raw inputs and applies the sub-mode's formula. Fields
// missing from in are treated as empty.
func (s SubMode) Evaluate(in formula.Inputs) formula.Result {
	if in == nil {
		in = formula.Inputs{}
	}
	return s.compute(in)
}

// Term is a glossary-style entry of reference content.
type Term struct {
	Term   string `json:"term" yaml:"term"`
	Detail string `json:"detail" yaml:"detail"`
}

// Table is a comparison table of reference content.
type Table struct {
	Title   string     `json:"title" yaml:"title"`
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// Reference is the static reading material for a module.
type Reference struct {
	Title      string  `json:"title" yaml:"title"`
	Definition string  `json:"definition" yaml:"definition"`
	KeyTerms   []Term  `json:"keyTerms,omitempty" yaml:"keyTerms,omitempty"`
	Tables     []Table `json:"tables,omitempty" yaml:"tables,omitempty"`
}

// Module is an immutable topic descriptor.
type Module struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Reference   Reference
	SubModes    []SubMode
}

// SubMode looks up a sub-mode by identifier.
func (m Module) SubMode(id string) (SubMode, bool) {
	for _, s := range m.SubModes {
		if s.ID == id {
			return s, true
		}
	}
	return SubMode{}, false
}

// DefaultSubMode returns the sub-mode a module opens with.
func (m Module) DefaultSubMode() SubMode {
	return m.SubModes[0]
}

// Catalog is the ordered, read-only set of modules.
type Catalog struct {
	modules []Module
	index   map[string]int
}

// NewCatalog validates and indexes the given modules.
func NewCatalog(modules ...Module) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(modules))}
	for i, m := range modules {
		if m.ID == "" {
			return nil, errors.New("module id must not be empty")
		}
		if _, dup := c.index[m.ID]; dup {
			return nil, fmt.Errorf("duplicate module id %q", m.ID)
		}
		if len(m.SubModes) == 0 {
			return nil, fmt.Errorf("module %q has no sub-modes", m.ID)
		}
		seen := make(map[string]struct{}, len(m.SubModes))
		for _, s := range m.SubModes {
			if _, dup := seen[s.ID]; dup {
				return nil, fmt.Errorf("module %q: duplicate sub-mode id %q", m.ID, s.ID)
			}
			if s.compute == nil {
				return nil, fmt.Errorf("module %q: sub-mode %q has no formula", m.ID, s.ID)
			}
			seen[s.ID] = struct{}{}
		}
		c.index[m.ID] = i
	}
	c.modules = append([]Module(nil), modules...)
	return c, nil
}

// Default returns the catalog of the five accounting topics.
func Default() *Catalog {
	c, err := NewCatalog(
		billsOfExchange(),
		consignmentAccounts(),
		jointVenture(),
		incompleteRecords(),
		nonProfitOrganizations(),
	)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in catalog: %v", err))
	}
	return c
}

// Modules returns the modules in navigation order.
func (c *Catalog) Modules() []Module {
	return append([]Module(nil), c.modules...)
}

// Module looks up a module by identifier.
func (c *Catalog) Module(id string) (Module, bool) {
	i, ok := c.index[id]
	if !ok {
		return Module{}, false
	}
	return c.modules[i], true
}

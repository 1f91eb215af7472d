// Package navigation models which module, sub-mode and view a user is looking
// at. State is a plain value: every transition returns a new State and nothing
// is kept between requests.
package navigation

import (
	"errors"
	"fmt"

	"github.com/iwvelando/accounting-tutor/internal/topic"
)

// View selects between a module's reference content and its calculator.
type View string

const (
	ViewDefinition View = "definition"
	ViewSimulator  View = "simulator"
)

var (
	ErrUnknownModule  = errors.New("unknown module")
	ErrUnknownSubMode = errors.New("unknown sub-mode")
	ErrUnknownView    = errors.New("unknown view")
	ErrNoModule       = errors.New("no module selected")
)

// ParseView validates a view name. An empty name selects the definition view.
func ParseView(name string) (View, error) {
	switch View(name) {
	case "", ViewDefinition:
		return ViewDefinition, nil
	case ViewSimulator:
		return ViewSimulator, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
}

// State is the current selection. The zero value is the landing page.
type State struct {
	Module  string `json:"module,omitempty"`
	SubMode string `json:"subMode,omitempty"`
	View    View   `json:"view,omitempty"`
}

// Landing reports whether no module is selected.
func (s State) Landing() bool {
	return s.Module == ""
}

// Selector applies transitions against a catalog.
type Selector struct {
	catalog *topic.Catalog
}

// NewSelector returns a selector over catalog.
func NewSelector(catalog *topic.Catalog) *Selector {
	return &Selector{catalog: catalog}
}

// Initial returns the landing state.
func (sel *Selector) Initial() State {
	return State{}
}

// Home returns to the landing state from anywhere.
func (sel *Selector) Home(State) State {
	return State{}
}

// SelectModule enters a module, opening its first sub-mode on the definition view.
func (sel *Selector) SelectModule(_ State, id string) (State, error) {
	m, ok := sel.catalog.Module(id)
	if !ok {
		return State{}, fmt.Errorf("%w: %q", ErrUnknownModule, id)
	}
	return State{Module: m.ID, SubMode: m.DefaultSubMode().ID, View: ViewDefinition}, nil
}

// SelectSubMode switches the calculator variant within the current module.
// The view is left unchanged.
func (sel *Selector) SelectSubMode(s State, id string) (State, error) {
	m, err := sel.current(s)
	if err != nil {
		return s, err
	}
	if _, ok := m.SubMode(id); !ok {
		return s, fmt.Errorf("%w: %q in module %q", ErrUnknownSubMode, id, m.ID)
	}
	s.SubMode = id
	return s, nil
}

// SelectView switches between reference content and calculator. The active
// sub-mode is kept.
func (sel *Selector) SelectView(s State, v View) (State, error) {
	if _, err := sel.current(s); err != nil {
		return s, err
	}
	if v != ViewDefinition && v != ViewSimulator {
		return s, fmt.Errorf("%w: %q", ErrUnknownView, v)
	}
	s.View = v
	return s, nil
}

// Resolve builds a state from externally supplied names, as carried in a URL
// or on the command line. Empty mode and view fall back to the module defaults.
func (sel *Selector) Resolve(module, mode, view string) (State, error) {
	if module == "" {
		return State{}, nil
	}
	s, err := sel.SelectModule(State{}, module)
	if err != nil {
		return State{}, err
	}
	if mode != "" {
		if s, err = sel.SelectSubMode(s, mode); err != nil {
			return State{}, err
		}
	}
	v, err := ParseView(view)
	if err != nil {
		return State{}, err
	}
	return sel.SelectView(s, v)
}

// Module returns the module and sub-mode a state points at.
func (sel *Selector) Module(s State) (topic.Module, topic.SubMode, error) {
	m, err := sel.current(s)
	if err != nil {
		return topic.Module{}, topic.SubMode{}, err
	}
	sub, ok := m.SubMode(s.SubMode)
	if !ok {
		return topic.Module{}, topic.SubMode{}, fmt.Errorf("%w: %q in module %q", ErrUnknownSubMode, s.SubMode, m.ID)
	}
	return m, sub, nil
}

func (sel *Selector) current(s State) (topic.Module, error) {
	if s.Landing() {
		return topic.Module{}, ErrNoModule
	}
	m, ok := sel.catalog.Module(s.Module)
	if !ok {
		return topic.Module{}, fmt.Errorf("%w: %q", ErrUnknownModule, s.Module)
	}
	return m, nil
}

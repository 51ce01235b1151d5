// Package viewmode tracks whether a record page shows its list, its create
// form or a single record.
package viewmode

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an action is not allowed in the
// current mode.
var ErrInvalidTransition = errors.New("invalid view mode transition")

// Mode is the current view of a record page.
type Mode int

// View modes.
const (
	List Mode = iota
	Create
	Detail
)

func (m Mode) String() string {
	switch m {
	case List:
		return "list"
	case Create:
		return "create"
	case Detail:
		return "detail"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case List, Create, Detail:
		return []byte(m.String()), nil
	}
	return nil, fmt.Errorf("unknown mode %d", int(m))
}

// Machine is the view-mode state of one page. The zero value is in List mode.
type Machine struct {
	mode     Mode
	selected string
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Selected returns the record shown in Detail mode, or "" otherwise.
func (m *Machine) Selected() string {
	return m.selected
}

func (m *Machine) transition(action string, from Mode) error {
	if m.mode != from {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, m.mode)
	}
	return nil
}

// New opens the create form.
func (m *Machine) New() error {
	if err := m.transition("new", List); err != nil {
		return err
	}
	m.mode = Create
	return nil
}

// Cancel leaves the create form without saving.
func (m *Machine) Cancel() error {
	if err := m.transition("cancel", Create); err != nil {
		return err
	}
	m.mode = List
	return nil
}

// Save runs commit and returns to the list when it succeeds. A failed
// commit keeps the form open and returns its error.
func (m *Machine) Save(commit func() error) error {
	if err := m.transition("save", Create); err != nil {
		return err
	}
	if commit != nil {
		if err := commit(); err != nil {
			return err
		}
	}
	m.mode = List
	return nil
}

// View shows the record identified by id.
func (m *Machine) View(id string) error {
	if err := m.transition("view", List); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: view requires a record id", ErrInvalidTransition)
	}
	m.mode = Detail
	m.selected = id
	return nil
}

// Back returns from a record to the list.
func (m *Machine) Back() error {
	if err := m.transition("back", Detail); err != nil {
		return err
	}
	m.mode = List
	m.selected = ""
	return nil
}

package viewmode

import (
	"errors"
	"testing"

	"github.com/iwvelando/marui-portal/pkg/validation"
)

func TestCreateCancelLeavesCollectionUntouched(t *testing.T) {
	records := []string{"1", "2"}
	var m Machine

	if err := m.New(); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m.Mode() != Create {
		t.Fatalf("Mode() = %v, expected create", m.Mode())
	}
	if err := m.Cancel(); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if m.Mode() != List {
		t.Errorf("Mode() = %v, expected list", m.Mode())
	}
	if len(records) != 2 {
		t.Errorf("collection changed to %v", records)
	}
}

func TestSave(t *testing.T) {
	var records []string
	var m Machine
	_ = m.New()

	failing := func() error {
		return &validation.Error{Message: validation.MsgRequiredFields}
	}
	err := m.Save(failing)
	if !validation.IsValidationError(err) {
		t.Fatalf("Save() error = %v, expected validation error", err)
	}
	if m.Mode() != Create {
		t.Errorf("failed save moved to %v, expected create", m.Mode())
	}

	err = m.Save(func() error {
		records = append(records, "3")
		return nil
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if m.Mode() != List || len(records) != 1 {
		t.Errorf("after save mode = %v, records = %v", m.Mode(), records)
	}
}

func TestViewBack(t *testing.T) {
	var m Machine
	if err := m.View("TGT-1"); err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if m.Mode() != Detail || m.Selected() != "TGT-1" {
		t.Errorf("after View mode = %v, selected = %q", m.Mode(), m.Selected())
	}
	if err := m.Back(); err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if m.Mode() != List || m.Selected() != "" {
		t.Errorf("after Back mode = %v, selected = %q", m.Mode(), m.Selected())
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*Machine)
		action func(*Machine) error
	}{
		{"cancel from list", func(*Machine) {}, (*Machine).Cancel},
		{"back from list", func(*Machine) {}, (*Machine).Back},
		{"save from list", func(*Machine) {}, func(m *Machine) error { return m.Save(nil) }},
		{"new from create", func(m *Machine) { _ = m.New() }, (*Machine).New},
		{"view from create", func(m *Machine) { _ = m.New() }, func(m *Machine) error { return m.View("x") }},
		{"new from detail", func(m *Machine) { _ = m.View("x") }, (*Machine).New},
		{"cancel from detail", func(m *Machine) { _ = m.View("x") }, (*Machine).Cancel},
		{"view without id", func(*Machine) {}, func(m *Machine) error { return m.View("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Machine
			tt.setup(&m)
			before := m.Mode()
			err := tt.action(&m)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if m.Mode() != before {
				t.Errorf("mode changed from %v to %v", before, m.Mode())
			}
		})
	}
}

func TestModeText(t *testing.T) {
	for _, m := range []Mode{List, Create, Detail} {
		text, err := m.MarshalText()
		if err != nil || string(text) != m.String() {
			t.Errorf("MarshalText(%v) = %s, %v", m, text, err)
		}
	}
	if _, err := Mode(7).MarshalText(); err == nil {
		t.Error("expected error for unknown mode")
	}
}

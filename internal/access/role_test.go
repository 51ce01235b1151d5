package access

import (
	"errors"
	"testing"
)

type record struct {
	name     string
	division string
}

func (r record) OwnerDivision() string { return r.division }

func sampleRecords() []record {
	return []record{
		{"AWS Cloud Services", "IT"},
		{"Google Ads Campaign", "Marketing"},
		{"Employee Training Program", "HR"},
		{"Sales Incentive Program", "Sales Komersial"},
		{"Digital Ocean", "IT"},
	}
}

func TestFilterByRole(t *testing.T) {
	tests := []struct {
		role     Role
		expected []string
	}{
		{Admin, []string{"AWS Cloud Services", "Google Ads Campaign", "Employee Training Program", "Sales Incentive Program", "Digital Ocean"}},
		{Finance, []string{"AWS Cloud Services", "Google Ads Campaign", "Employee Training Program", "Sales Incentive Program", "Digital Ocean"}},
		{TopManagement, []string{"AWS Cloud Services", "Google Ads Campaign", "Employee Training Program", "Sales Incentive Program", "Digital Ocean"}},
		{DivisiUser, []string{"AWS Cloud Services", "Digital Ocean"}},
		{DivisiSalesKomersial, []string{"Sales Incentive Program"}},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			got := FilterByRole(tt.role, sampleRecords())
			if len(got) != len(tt.expected) {
				t.Fatalf("FilterByRole() returned %d records, expected %d", len(got), len(tt.expected))
			}
			for i, rec := range got {
				if rec.name != tt.expected[i] {
					t.Errorf("record %d = %s, expected %s", i, rec.name, tt.expected[i])
				}
			}
		})
	}
}

func TestUnknownRoleSeesNothing(t *testing.T) {
	for _, r := range []Role{Role(-1), Role(99)} {
		t.Run(r.String(), func(t *testing.T) {
			if CanSeeDivision(r, "IT") {
				t.Error("CanSeeDivision() = true for an unknown role")
			}
			if got := FilterByRole(r, sampleRecords()); len(got) != 0 {
				t.Errorf("FilterByRole() returned %d records, expected none", len(got))
			}
			if got := VisibleDivisions(r, []string{"IT", "Marketing"}); len(got) != 0 {
				t.Errorf("VisibleDivisions() = %v, expected none", got)
			}
		})
	}
}

func TestFilterByRoleEmpty(t *testing.T) {
	got := FilterByRole[record](DivisiUser, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input     string
		expected  Role
		expectErr bool
	}{
		{"Admin", Admin, false},
		{"finance", Finance, false},
		{"  Divisi User ", DivisiUser, false},
		{"Top Management", TopManagement, false},
		{"Divisi Sales Komersial", DivisiSalesKomersial, false},
		{"Sales MSA", Admin, true},
		{"", Admin, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.expectErr {
				if !errors.Is(err, ErrUnknownRole) {
					t.Fatalf("ParseRole(%q) error = %v, expected ErrUnknownRole", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRole(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseRole(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRoleTextRoundTrip(t *testing.T) {
	for _, r := range AllRoles {
		text, err := r.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", r, err)
		}
		var decoded Role
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) error = %v", text, err)
		}
		if decoded != r {
			t.Errorf("round trip %v -> %v", r, decoded)
		}
	}
	if _, err := Role(42).MarshalText(); err == nil {
		t.Error("expected error for invalid role")
	}
}

func TestPermissions(t *testing.T) {
	tests := []struct {
		role         Role
		canInput     bool
		canChooseDiv bool
	}{
		{Admin, true, true},
		{Finance, true, true},
		{DivisiUser, true, false},
		{TopManagement, false, true},
		{DivisiSalesKomersial, true, false},
		{Role(99), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := CanInput(tt.role); got != tt.canInput {
				t.Errorf("CanInput() = %v, expected %v", got, tt.canInput)
			}
			if got := CanChooseDivision(tt.role); got != tt.canChooseDiv {
				t.Errorf("CanChooseDivision() = %v, expected %v", got, tt.canChooseDiv)
			}
		})
	}
}

func TestVisibleDivisions(t *testing.T) {
	all := []string{"IT", "Marketing", "Sales Komersial"}
	if got := VisibleDivisions(DivisiUser, all); len(got) != 1 || got[0] != "IT" {
		t.Errorf("VisibleDivisions(DivisiUser) = %v", got)
	}
	if got := VisibleDivisions(Finance, all); len(got) != 3 {
		t.Errorf("VisibleDivisions(Finance) = %v", got)
	}
}

// Package access decides which divisions and pages a portal role may see.
package access

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/marui-portal/pkg/constants"
)

// ErrUnknownRole is returned when a role name is not one of the portal roles.
var ErrUnknownRole = errors.New("unknown role")

// ErrForbidden is returned when a role may not open a page or change data.
var ErrForbidden = errors.New("forbidden")

// Role is a portal role. The zero value is Admin.
type Role int

// Portal roles.
const (
	Admin Role = iota
	Finance
	DivisiUser
	TopManagement
	DivisiSalesKomersial
)

// AllRoles lists the roles offered by the role switcher, in display order.
var AllRoles = []Role{Admin, Finance, DivisiUser, TopManagement, DivisiSalesKomersial}

func (r Role) String() string {
	switch r {
	case Admin:
		return "Admin"
	case Finance:
		return "Finance"
	case DivisiUser:
		return "Divisi User"
	case TopManagement:
		return "Top Management"
	case DivisiSalesKomersial:
		return "Divisi Sales Komersial"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Valid reports whether r is one of the portal roles.
func (r Role) Valid() bool {
	return r >= Admin && r <= DivisiSalesKomersial
}

// ParseRole maps a display name to a Role. Matching ignores case and
// surrounding whitespace.
func ParseRole(name string) (Role, error) {
	trimmed := strings.TrimSpace(name)
	for _, r := range AllRoles {
		if strings.EqualFold(trimmed, r.String()) {
			return r, nil
		}
	}
	return Admin, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// MarshalText encodes the role by its display name.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText decodes a role display name.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ScopedDivision returns the single division a role is limited to. ok is
// false for roles that see every division.
func ScopedDivision(r Role) (division string, ok bool) {
	switch r {
	case DivisiUser:
		return constants.DivisionIT, true
	case DivisiSalesKomersial:
		return constants.DivisionSalesKomersial, true
	case Admin, Finance, TopManagement:
		return "", false
	}
	return "", false
}

// CanSeeDivision reports whether records of division are visible to r.
// An unknown role sees nothing.
func CanSeeDivision(r Role, division string) bool {
	if !r.Valid() {
		return false
	}
	scoped, ok := ScopedDivision(r)
	if !ok {
		return true
	}
	return division == scoped
}

// CanChooseDivision reports whether the division filter is offered to r.
func CanChooseDivision(r Role) bool {
	_, scoped := ScopedDivision(r)
	return r.Valid() && !scoped
}

// CanInput reports whether r may create, upload or delete records.
// Top Management is read-only.
func CanInput(r Role) bool {
	return r.Valid() && r != TopManagement
}

// Owned is implemented by records that belong to a division.
type Owned interface {
	OwnerDivision() string
}

// FilterByRole returns the records visible to r, preserving order.
func FilterByRole[T Owned](r Role, records []T) []T {
	visible := make([]T, 0, len(records))
	for _, rec := range records {
		if CanSeeDivision(r, rec.OwnerDivision()) {
			visible = append(visible, rec)
		}
	}
	return visible
}

// VisibleDivisions narrows a list of division names to those r may see.
func VisibleDivisions(r Role, divisions []string) []string {
	visible := make([]string, 0, len(divisions))
	for _, d := range divisions {
		if CanSeeDivision(r, d) {
			visible = append(visible, d)
		}
	}
	return visible
}

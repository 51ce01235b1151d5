package masterdata

import (
	"strings"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"go.uber.org/zap"
)

// Division is an organisational unit that owns budgets.
type Division struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// Validate checks the required division fields.
func (d Division) Validate() error {
	return validation.Required(
		validation.Field{Name: "code", Value: d.Code},
		validation.Field{Name: "name", Value: d.Name},
	)
}

// Divisions lists the divisions whose code or name contains query.
func (r *Registry) Divisions(role access.Role, query string) ([]Division, error) {
	if err := checkPage(role, access.PageMasterDivisi); err != nil {
		return nil, err
	}
	return search(r.divisions, func(d Division) bool {
		return contains(query, d.Code, d.Name)
	}), nil
}

func (r *Registry) divisionCodeTaken(code, except string) bool {
	_, taken := r.divisions.Find(func(d Division) bool {
		return d.ID != except && strings.EqualFold(d.Code, code)
	})
	return taken
}

// AddDivision stores a new active division.
func (r *Registry) AddDivision(role access.Role, d Division) (Division, error) {
	if err := checkEdit(role, access.PageMasterDivisi); err != nil {
		return Division{}, err
	}
	if err := d.Validate(); err != nil {
		return Division{}, err
	}
	if r.divisionCodeTaken(d.Code, "") {
		return Division{}, duplicate("code", d.Code)
	}
	d.ID = ""
	d.Status = StatusActive
	stored := r.divisions.Insert(d)
	r.logger.Info("division added",
		zap.String("op", "masterdata.AddDivision"),
		zap.String("id", stored.ID),
		zap.String("code", stored.Code),
	)
	return stored, nil
}

// EditDivision replaces the code, name and description of a division.
// The status is changed only by ToggleDivision.
func (r *Registry) EditDivision(role access.Role, id string, d Division) (Division, error) {
	if err := checkEdit(role, access.PageMasterDivisi); err != nil {
		return Division{}, err
	}
	if err := d.Validate(); err != nil {
		return Division{}, err
	}
	if r.divisionCodeTaken(d.Code, id) {
		return Division{}, duplicate("code", d.Code)
	}
	return r.divisions.Update(id, func(cur *Division) error {
		cur.Code, cur.Name, cur.Description = d.Code, d.Name, d.Description
		return nil
	})
}

// ToggleDivision flips a division between Active and Inactive.
func (r *Registry) ToggleDivision(role access.Role, id string) (Division, error) {
	if err := checkEdit(role, access.PageMasterDivisi); err != nil {
		return Division{}, err
	}
	return r.divisions.Update(id, func(cur *Division) error {
		cur.Status = cur.Status.Toggle()
		return nil
	})
}

// ActiveDivisionNames returns the names of active divisions in stored order.
func (r *Registry) ActiveDivisionNames() []string {
	var names []string
	for _, d := range r.divisions.All() {
		if d.Status == StatusActive {
			names = append(names, d.Name)
		}
	}
	return names
}

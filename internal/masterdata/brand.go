package masterdata

import (
	"strings"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"go.uber.org/zap"
)

// Brand is a product brand sold by the sales division.
type Brand struct {
	ID          string `json:"id"`
	Code        string `json:"brandCode"`
	Name        string `json:"brandName"`
	Status      Status `json:"status"`
	CreatedDate string `json:"createdDate"`
	LastUpdated string `json:"lastUpdated"`
	CreatedBy   string `json:"createdBy"`
}

// Validate checks the required brand fields.
func (b Brand) Validate() error {
	if err := validation.Required(
		validation.Field{Name: "brandCode", Value: b.Code},
		validation.Field{Name: "brandName", Value: b.Name},
	); err != nil {
		return err
	}
	if b.Status != "" && !b.Status.Valid() {
		return validation.Failf("unknown status %q", string(b.Status))
	}
	return nil
}

// Brands lists the brands whose code or name contains query.
func (r *Registry) Brands(role access.Role, query string) ([]Brand, error) {
	if err := checkPage(role, access.PageMasterBrand); err != nil {
		return nil, err
	}
	return search(r.brands, func(b Brand) bool {
		return contains(query, b.Code, b.Name)
	}), nil
}

func (r *Registry) brandByCode(code string) (Brand, bool) {
	return r.brands.Find(func(b Brand) bool { return strings.EqualFold(b.Code, code) })
}

// BrandName returns the name of the brand with code.
func (r *Registry) BrandName(code string) (string, bool) {
	b, ok := r.brandByCode(code)
	return b.Name, ok
}

// AddBrand stores a new brand. The status defaults to Active.
func (r *Registry) AddBrand(role access.Role, b Brand) (Brand, error) {
	if err := checkEdit(role, access.PageMasterBrand); err != nil {
		return Brand{}, err
	}
	if err := b.Validate(); err != nil {
		return Brand{}, err
	}
	if _, taken := r.brandByCode(b.Code); taken {
		return Brand{}, duplicate("brandCode", b.Code)
	}
	b.ID = ""
	if b.Status == "" {
		b.Status = StatusActive
	}
	b.CreatedDate = r.today()
	b.LastUpdated = b.CreatedDate
	if b.CreatedBy == "" {
		b.CreatedBy = role.String()
	}
	stored := r.brands.Insert(b)
	r.logger.Info("brand added",
		zap.String("op", "masterdata.AddBrand"),
		zap.String("id", stored.ID),
		zap.String("code", stored.Code),
	)
	return stored, nil
}

// EditBrand replaces the code, name and status of a brand. Products of
// the brand follow a changed code and name.
func (r *Registry) EditBrand(role access.Role, id string, b Brand) (Brand, error) {
	if err := checkEdit(role, access.PageMasterBrand); err != nil {
		return Brand{}, err
	}
	if err := b.Validate(); err != nil {
		return Brand{}, err
	}
	if other, taken := r.brandByCode(b.Code); taken && other.ID != id {
		return Brand{}, duplicate("brandCode", b.Code)
	}
	var oldCode string
	updated, err := r.brands.Update(id, func(cur *Brand) error {
		oldCode = cur.Code
		cur.Code, cur.Name = b.Code, b.Name
		if b.Status != "" {
			cur.Status = b.Status
		}
		cur.LastUpdated = r.today()
		return nil
	})
	if err != nil {
		return Brand{}, err
	}
	for _, p := range r.products.All() {
		if p.BrandCode != oldCode {
			continue
		}
		if _, err := r.products.Update(p.ID, func(cur *Product) error {
			cur.BrandCode, cur.BrandName = updated.Code, updated.Name
			return nil
		}); err != nil {
			return Brand{}, err
		}
	}
	return updated, nil
}

// ToggleBrand flips a brand between Active and Inactive.
func (r *Registry) ToggleBrand(role access.Role, id string) (Brand, error) {
	if err := checkEdit(role, access.PageMasterBrand); err != nil {
		return Brand{}, err
	}
	return r.brands.Update(id, func(cur *Brand) error {
		cur.Status = cur.Status.Toggle()
		cur.LastUpdated = r.today()
		return nil
	})
}

// DeleteBrand removes a brand that no product refers to.
func (r *Registry) DeleteBrand(role access.Role, id string) error {
	if err := checkEdit(role, access.PageMasterBrand); err != nil {
		return err
	}
	b, err := r.brands.Get(id)
	if err != nil {
		return err
	}
	if _, used := r.products.Find(func(p Product) bool { return p.BrandCode == b.Code }); used {
		return validation.Failf("Brand %s still has products", b.Name)
	}
	return r.brands.Delete(id)
}

package masterdata

import (
	"strings"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/sales"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"go.uber.org/zap"
)

// Product is a sellable item of a brand.
type Product struct {
	ID          string  `json:"id"`
	BrandCode   string  `json:"brandCode"`
	BrandName   string  `json:"brandName"`
	Name        string  `json:"productName"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Status      Status  `json:"status"`
	LastUpdated string  `json:"lastUpdated"`
	CreatedBy   string  `json:"createdBy"`
}

// Validate checks the required product fields.
func (p Product) Validate() error {
	if err := validation.Required(
		validation.Field{Name: "brandCode", Value: p.BrandCode},
		validation.Field{Name: "productName", Value: p.Name},
		validation.Field{Name: "sku", Value: p.SKU},
	); err != nil {
		return err
	}
	if p.Price < 0 {
		return &validation.Error{Message: "Price must not be negative", Fields: []string{"price"}}
	}
	if p.Status != "" && !p.Status.Valid() {
		return validation.Failf("unknown status %q", string(p.Status))
	}
	return nil
}

// ProductFilter narrows the product list. A zero BrandCode or "All"
// matches every brand.
type ProductFilter struct {
	Search    string
	BrandCode string
}

// Match reports whether p passes the filter. Search matches the product
// name, SKU and brand name.
func (f ProductFilter) Match(p Product) bool {
	if f.BrandCode != "" && f.BrandCode != constants.FilterAll && p.BrandCode != f.BrandCode {
		return false
	}
	return contains(f.Search, p.Name, p.SKU, p.BrandName)
}

// Products lists the products that pass filter.
func (r *Registry) Products(role access.Role, filter ProductFilter) ([]Product, error) {
	if err := checkPage(role, access.PageMasterProduct); err != nil {
		return nil, err
	}
	return search(r.products, filter.Match), nil
}

func (r *Registry) productBySKU(sku string) (Product, bool) {
	return r.products.Find(func(p Product) bool { return strings.EqualFold(p.SKU, sku) })
}

// Product returns the catalog entry of sku for sales lines.
func (r *Registry) Product(sku string) (sales.ProductInfo, bool) {
	p, ok := r.productBySKU(sku)
	if !ok {
		return sales.ProductInfo{}, false
	}
	return sales.ProductInfo{
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		BrandCode: p.BrandCode,
		Price:     p.Price,
	}, true
}

func (r *Registry) resolveBrand(p *Product) error {
	name, ok := r.BrandName(p.BrandCode)
	if !ok {
		return &validation.Error{Message: "Unknown brand " + p.BrandCode, Fields: []string{"brandCode"}}
	}
	p.BrandName = name
	return nil
}

// AddProduct stores a new product of an existing brand.
func (r *Registry) AddProduct(role access.Role, p Product) (Product, error) {
	if err := checkEdit(role, access.PageMasterProduct); err != nil {
		return Product{}, err
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	if err := r.resolveBrand(&p); err != nil {
		return Product{}, err
	}
	if _, taken := r.productBySKU(p.SKU); taken {
		return Product{}, duplicate("sku", p.SKU)
	}
	p.ID = ""
	if p.Status == "" {
		p.Status = StatusActive
	}
	p.LastUpdated = r.today()
	if p.CreatedBy == "" {
		p.CreatedBy = role.String()
	}
	stored := r.products.Insert(p)
	r.logger.Info("product added",
		zap.String("op", "masterdata.AddProduct"),
		zap.String("id", stored.ID),
		zap.String("sku", stored.SKU),
		zap.String("brand", stored.BrandCode),
	)
	return stored, nil
}

// EditProduct replaces the details of a product.
func (r *Registry) EditProduct(role access.Role, id string, p Product) (Product, error) {
	if err := checkEdit(role, access.PageMasterProduct); err != nil {
		return Product{}, err
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	if err := r.resolveBrand(&p); err != nil {
		return Product{}, err
	}
	if other, taken := r.productBySKU(p.SKU); taken && other.ID != id {
		return Product{}, duplicate("sku", p.SKU)
	}
	return r.products.Update(id, func(cur *Product) error {
		cur.BrandCode, cur.BrandName = p.BrandCode, p.BrandName
		cur.Name, cur.SKU, cur.Category, cur.Price = p.Name, p.SKU, p.Category, p.Price
		if p.Status != "" {
			cur.Status = p.Status
		}
		cur.LastUpdated = r.today()
		return nil
	})
}

// ToggleProduct flips a product between Active and Inactive.
func (r *Registry) ToggleProduct(role access.Role, id string) (Product, error) {
	if err := checkEdit(role, access.PageMasterProduct); err != nil {
		return Product{}, err
	}
	return r.products.Update(id, func(cur *Product) error {
		cur.Status = cur.Status.Toggle()
		cur.LastUpdated = r.today()
		return nil
	})
}

// DeleteProduct removes a product.
func (r *Registry) DeleteProduct(role access.Role, id string) error {
	if err := checkEdit(role, access.PageMasterProduct); err != nil {
		return err
	}
	return r.products.Delete(id)
}

var _ sales.Catalog = (*Registry)(nil)

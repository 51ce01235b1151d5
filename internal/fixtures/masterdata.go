package fixtures

import (
	"github.com/iwvelando/marui-portal/internal/masterdata"
)

const salesManager = "Sales Manager"

// Divisions returns the organisational divisions.
func Divisions() []masterdata.Division {
	return []masterdata.Division{
		{Code: "FIN", Name: "Finance", Description: "Financial Department", Status: masterdata.StatusActive},
		{Code: "SAL", Name: "Sales", Description: "Sales Department", Status: masterdata.StatusActive},
		{Code: "OPS", Name: "Operations", Description: "Operations Department", Status: masterdata.StatusActive},
		{Code: "HR", Name: "Human Resources", Description: "Human Resources Department", Status: masterdata.StatusInactive},
	}
}

// Users returns the portal accounts.
func Users() []masterdata.User {
	return []masterdata.User{
		{Name: "John Doe", Email: "john@marui.com", Role: "Admin", Division: "Operations", Status: masterdata.StatusActive},
		{Name: "Jane Smith", Email: "jane@marui.com", Role: "Finance", Division: "Finance", Status: masterdata.StatusActive},
		{Name: "Bob Johnson", Email: "bob@marui.com", Role: "Sales MSA", Division: "Sales", Status: masterdata.StatusActive},
		{Name: "Alice Williams", Email: "alice@marui.com", Role: "Top Management", Division: "Operations", Status: masterdata.StatusInactive},
	}
}

// Brands returns the product brands.
func Brands() []masterdata.Brand {
	brand := func(code, name, created, updated string) masterdata.Brand {
		return masterdata.Brand{
			Code:        code,
			Name:        name,
			Status:      masterdata.StatusActive,
			CreatedDate: created,
			LastUpdated: updated,
			CreatedBy:   salesManager,
		}
	}
	return []masterdata.Brand{
		brand("BRD001", "Gendes", "2024-01-15", "2024-02-10"),
		brand("BRD002", "Kavela", "2024-01-15", "2024-01-15"),
		brand("BRD003", "IM Man", "2024-01-20", "2024-02-05"),
		brand("BRD004", "SYMS", "2024-01-22", "2024-01-22"),
	}
}

// Products returns the products of every brand.
func Products() []masterdata.Product {
	product := func(code, brand, sku, name, category string, price float64) masterdata.Product {
		return masterdata.Product{
			BrandCode:   code,
			BrandName:   brand,
			Name:        name,
			SKU:         sku,
			Category:    category,
			Price:       price,
			Status:      masterdata.StatusActive,
			LastUpdated: "2024-02-10",
			CreatedBy:   salesManager,
		}
	}
	return []masterdata.Product{
		product("BRD001", "Gendes", "GEN-FCH-001", "Gendes foam chocolate", "Feminine Hygiene", 35000),
		product("BRD001", "Gendes", "GEN-SAF-002", "GENDES Sweet Aromatic Feminine Hygiene Bubblegum Foam 55ml", "Feminine Hygiene", 42000),
		product("BRD002", "Kavela", "KAV-MSB-001", "Mouth Spray Berry Mood 20 ml", "Mouth Care", 28000),
		product("BRD002", "Kavela", "KAV-MSL-002", "Mouth Spray Lychee Love 20 ml", "Mouth Care", 28000),
		product("BRD003", "IM Man", "IMM-SFL-001", "I'm Man Spray Fresh Lemon", "Men's Care", 32000),
		product("BRD003", "IM Man", "IMM-SSC-002", "I'm Man Spray Splash Cola", "Men's Care", 32000),
		product("BRD004", "SYMS", "SYM-HTR-001", "SYMS Hair Tonic Rosemary Foam 60 ml", "Hair Care", 48000),
		product("BRD004", "SYMS", "SYM-HSR-002", "SYMS Hair Serum Rosemary Oil 30 ml", "Hair Care", 65000),
	}
}

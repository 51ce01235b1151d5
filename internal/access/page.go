package access

import (
	"fmt"
	"strings"
)

// Page is a portal page.
type Page int

// Portal pages.
const (
	PageDashboard Page = iota
	PageBudgetDashboard
	PageSalesDashboard
	PageBudgeting
	PageActualBudget
	PageUploadBudget
	PageTargetSales
	PageTargetAds
	PageActualSales
	PageMasterBrand
	PageMasterProduct
	PageMasterDivisi
	PageUserRoles
)

// AllPages lists every page in sidebar order.
var AllPages = []Page{
	PageDashboard,
	PageBudgetDashboard,
	PageSalesDashboard,
	PageBudgeting,
	PageActualBudget,
	PageUploadBudget,
	PageMasterBrand,
	PageMasterProduct,
	PageTargetSales,
	PageTargetAds,
	PageActualSales,
	PageMasterDivisi,
	PageUserRoles,
}

type pageInfo struct {
	title string
	path  string
	group string
}

var pages = map[Page]pageInfo{
	PageDashboard:       {"Dashboard", "/", "Main Menu"},
	PageBudgetDashboard: {"Budget Dashboard", "/budget-dashboard", "Main Menu"},
	PageSalesDashboard:  {"Sales Dashboard", "/sales-dashboard", "Main Menu"},
	PageBudgeting:       {"Budgeting", "/budgeting", "Main Menu"},
	PageActualBudget:    {"Actual Budget", "/actual-budget", "Main Menu"},
	PageUploadBudget:    {"Upload Budget", "/upload-budget", ""},
	PageMasterBrand:     {"Master Data Brand", "/master-brand", "Master Data"},
	PageMasterProduct:   {"Master Data Produk", "/master-product", "Master Data"},
	PageTargetSales:     {"Target Sales", "/sales/target-sales", "Sales"},
	PageTargetAds:       {"Target Ads & Marketing", "/sales/target-ads-marketing", "Sales"},
	PageActualSales:     {"Actual Sales", "/sales/actual-sales", "Sales"},
	PageMasterDivisi:    {"Master Divisi", "/master-divisi", "Admin Settings"},
	PageUserRoles:       {"User & Roles", "/user-roles", "Admin Settings"},
}

func (p Page) String() string {
	if info, ok := pages[p]; ok {
		return info.title
	}
	return fmt.Sprintf("Page(%d)", int(p))
}

// Path returns the route the page is served under.
func (p Page) Path() string {
	return pages[p].path
}

// MarshalText encodes the page by its route.
func (p Page) MarshalText() ([]byte, error) {
	info, ok := pages[p]
	if !ok {
		return nil, fmt.Errorf("unknown page %d", int(p))
	}
	return []byte(info.path), nil
}

// ParsePage maps a route or title to a Page.
func ParsePage(s string) (Page, error) {
	trimmed := strings.TrimSpace(s)
	for _, p := range AllPages {
		info := pages[p]
		if trimmed == info.path || strings.EqualFold(trimmed, info.title) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown page %q", s)
}

// CanAccess reports whether r may open p.
func CanAccess(r Role, p Page) bool {
	if !r.Valid() {
		return false
	}
	switch p {
	case PageDashboard, PageMasterDivisi, PageUserRoles:
		return r == Admin
	case PageBudgetDashboard, PageSalesDashboard:
		return r == TopManagement
	case PageBudgeting, PageActualBudget:
		return true
	case PageUploadBudget:
		return r != TopManagement
	case PageTargetSales, PageTargetAds, PageActualSales, PageMasterBrand, PageMasterProduct:
		return r == DivisiSalesKomersial
	}
	return false
}

// DefaultPage is where r lands after login or after a refused navigation.
func DefaultPage(r Role) Page {
	switch r {
	case Admin:
		return PageDashboard
	case TopManagement:
		return PageBudgetDashboard
	case Finance, DivisiUser, DivisiSalesKomersial:
		return PageBudgeting
	}
	return PageBudgeting
}

// Resolve returns the page r ends up on when navigating to p, and whether a
// redirect happened.
func Resolve(r Role, p Page) (Page, bool) {
	if CanAccess(r, p) {
		return p, false
	}
	return DefaultPage(r), true
}

// MenuItem is one sidebar entry.
type MenuItem struct {
	Page  Page   `json:"page"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Group string `json:"group"`
}

// Menu returns the sidebar entries shown to r. Upload Budget is reached from
// the Budgeting page and is not listed.
func Menu(r Role) []MenuItem {
	var items []MenuItem
	for _, p := range AllPages {
		info := pages[p]
		if info.group == "" || !CanAccess(r, p) {
			continue
		}
		items = append(items, MenuItem{Page: p, Title: info.title, Path: info.path, Group: info.group})
	}
	return items
}

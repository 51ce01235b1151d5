package sales

import (
	"github.com/iwvelando/marui-portal/internal/metrics"
	"github.com/iwvelando/marui-portal/pkg/mathutil"
	"github.com/iwvelando/marui-portal/pkg/validation"
)

// MsgNoActualLines is shown when actual sales are saved without products.
const MsgNoActualLines = "Please add at least one product actual"

// Data sources of actual sales.
const (
	SourceManualInput       = "Manual Input"
	SourceMarketplaceReport = "Marketplace Report"
)

// DataSources lists the accepted data sources.
var DataSources = []string{SourceManualInput, SourceMarketplaceReport}

// ActualLine is what one product sold in the month.
type ActualLine struct {
	SKU     string  `json:"sku"`
	Orders  float64 `json:"actualOrder"`
	Units   float64 `json:"actualUnitSold"`
	Revenue float64 `json:"actualRevenue"`
}

// AvgUnitPerOrder is units sold per order, 0 without orders.
func (l ActualLine) AvgUnitPerOrder() float64 {
	return mathutil.SafeDivide(l.Units, l.Orders)
}

// AvgSellingPrice is revenue per unit, 0 without units.
func (l ActualLine) AvgSellingPrice() float64 {
	return mathutil.SafeDivide(l.Revenue, l.Units)
}

// ActualSales is the reported sales of one brand on one channel for a month.
type ActualSales struct {
	ID string `json:"id"`
	Key
	Brand       string       `json:"brand"`
	DataSource  string       `json:"dataSource"`
	Lines       []ActualLine `json:"products"`
	Notes       string       `json:"notes"`
	CreatedBy   string       `json:"createdBy"`
	CreatedDate string       `json:"createdDate"`
}

// OwnerDivision returns the division actual sales belong to.
func (a ActualSales) OwnerDivision() string { return owner() }

// Totals sums revenue, orders and units over every line.
func (a ActualSales) Totals() (revenue, orders, units float64) {
	for _, l := range a.Lines {
		revenue += l.Revenue
		orders += l.Orders
		units += l.Units
	}
	return revenue, orders, units
}

// Validate checks the key, the presence of lines and their amounts.
func (a ActualSales) Validate() error {
	if err := a.Key.validate(true); err != nil {
		return err
	}
	if len(a.Lines) == 0 {
		return &validation.Error{Message: MsgNoActualLines}
	}
	if a.DataSource != "" && a.DataSource != SourceManualInput && a.DataSource != SourceMarketplaceReport {
		return validation.Failf("unknown data source %q", a.DataSource)
	}
	seen := map[string]bool{}
	for _, l := range a.Lines {
		if l.SKU == "" {
			return &validation.Error{Message: validation.MsgRequiredFields, Fields: []string{"sku"}}
		}
		if seen[l.SKU] {
			return validation.Failf("product %s is listed more than once", l.SKU)
		}
		seen[l.SKU] = true
		if l.Revenue < 0 || l.Orders < 0 || l.Units < 0 {
			return validation.Failf("product %s has a negative amount", l.SKU)
		}
	}
	return nil
}

// LineResult is an actual line compared with its target line.
type LineResult struct {
	ActualLine
	AvgUnitPerOrder    float64             `json:"avgUnitPerOrder"`
	AvgSellingPrice    float64             `json:"avgSellingPrice"`
	TargetRevenue      *float64            `json:"targetRevenue,omitempty"`
	TargetOrder        *float64            `json:"targetOrder,omitempty"`
	TargetUnit         *float64            `json:"targetUnit,omitempty"`
	AchievementRevenue *float64            `json:"achievementRevenue"`
	AchievementOrder   *float64            `json:"achievementOrder"`
	AchievementUnit    *float64            `json:"achievementUnit"`
	Status             metrics.SalesStatus `json:"status"`
}

// Report is actual sales compared with the target of the same key.
type Report struct {
	ActualSales
	TotalRevenue              float64             `json:"totalActualRevenue"`
	TotalOrders               float64             `json:"totalActualOrder"`
	TotalUnits                float64             `json:"totalActualUnit"`
	TotalTargetRevenue        *float64            `json:"totalTargetRevenue,omitempty"`
	OverallAchievement        *float64            `json:"overallAchievement"`
	OverallAchievementDisplay *float64            `json:"overallAchievementDisplay"`
	Status                    metrics.SalesStatus `json:"status"`
	Results                   []LineResult        `json:"results"`
}

// Evaluate compares actual with target. target may be nil when no target
// exists for the key, in which case every achievement is absent.
func Evaluate(actual ActualSales, target *TargetSales) Report {
	r := Report{ActualSales: actual}
	r.TotalRevenue, r.TotalOrders, r.TotalUnits = actual.Totals()

	if target != nil {
		total := target.TotalRevenue
		r.TotalTargetRevenue = &total
		r.OverallAchievement = metrics.OptionalAchievement(r.TotalRevenue, r.TotalTargetRevenue)
	}
	r.OverallAchievementDisplay = metrics.DisplayOptional(r.OverallAchievement)
	r.Status = metrics.SalesStatusOf(r.OverallAchievement)

	r.Results = make([]LineResult, 0, len(actual.Lines))
	for _, l := range actual.Lines {
		res := LineResult{
			ActualLine:      l,
			AvgUnitPerOrder: l.AvgUnitPerOrder(),
			AvgSellingPrice: l.AvgSellingPrice(),
		}
		if target != nil {
			if tl, ok := target.Line(l.SKU); ok {
				rev, ord, unit := tl.Revenue, tl.Orders, tl.Units
				res.TargetRevenue, res.TargetOrder, res.TargetUnit = &rev, &ord, &unit
				res.AchievementRevenue = metrics.OptionalAchievement(l.Revenue, res.TargetRevenue)
				res.AchievementOrder = metrics.OptionalAchievement(l.Orders, res.TargetOrder)
				res.AchievementUnit = metrics.OptionalAchievement(l.Units, res.TargetUnit)
			}
		}
		res.Status = metrics.SalesStatusOf(res.AchievementRevenue)
		r.Results = append(r.Results, res)
	}
	return r
}

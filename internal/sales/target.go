package sales

import (
	"math"

	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/datetime"
	"github.com/iwvelando/marui-portal/pkg/mathutil"
	"github.com/iwvelando/marui-portal/pkg/validation"
)

// MsgNoTargetLines is shown when a target is saved without products.
const MsgNoTargetLines = "Please add at least one product target"

// TargetLine is the monthly target of one product.
type TargetLine struct {
	SKU          string  `json:"sku"`
	ProductName  string  `json:"productName"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Revenue      float64 `json:"targetRevenue"`
	Orders       float64 `json:"targetOrder"`
	Units        float64 `json:"targetUnit"`
	DailyTarget  float64 `json:"dailyTarget"`
	WeeklyTarget float64 `json:"weeklyTarget"`
}

// TargetSales is the sales target of one brand on one channel for a month.
type TargetSales struct {
	ID string `json:"id"`
	Key
	Brand        string       `json:"brand"`
	TotalRevenue float64      `json:"totalTargetRevenue"`
	TotalUnits   float64      `json:"totalTargetUnit"`
	TotalOrders  float64      `json:"totalTargetOrder"`
	Lines        []TargetLine `json:"products"`
	CreatedBy    string       `json:"createdBy"`
	CreatedDate  string       `json:"createdDate"`
}

// OwnerDivision returns the division sales targets belong to.
func (t TargetSales) OwnerDivision() string { return owner() }

// DailyTarget spreads revenue evenly over the days of the month.
func DailyTarget(revenue float64, month datetime.Month, year int) float64 {
	return mathutil.SafeDivide(revenue, float64(datetime.DaysIn(month, year)))
}

// WeeklyTarget splits revenue over four weeks.
func WeeklyTarget(revenue float64) float64 {
	return revenue / constants.WeeksPerMonth
}

// UnitsFromRevenue returns the whole number of units revenue buys at price.
func UnitsFromRevenue(revenue, price float64) float64 {
	if price <= 0 {
		return 0
	}
	return math.Round(revenue / price)
}

// RevenueFromUnits returns the revenue of units sold at price.
func RevenueFromUnits(units, price float64) float64 {
	return units * price
}

// Line returns the target line for sku.
func (t TargetSales) Line(sku string) (TargetLine, bool) {
	for _, l := range t.Lines {
		if l.SKU == sku {
			return l, true
		}
	}
	return TargetLine{}, false
}

// Recalculate derives units, daily and weekly targets of every line and
// the header totals from the lines.
func (t *TargetSales) Recalculate() {
	t.TotalRevenue, t.TotalUnits, t.TotalOrders = 0, 0, 0
	for i := range t.Lines {
		l := &t.Lines[i]
		if l.Units == 0 && l.Revenue > 0 {
			l.Units = UnitsFromRevenue(l.Revenue, l.Price)
		}
		if l.Revenue == 0 && l.Units > 0 {
			l.Revenue = RevenueFromUnits(l.Units, l.Price)
		}
		l.DailyTarget = DailyTarget(l.Revenue, t.Month, t.Year)
		l.WeeklyTarget = WeeklyTarget(l.Revenue)
		t.TotalRevenue += l.Revenue
		t.TotalUnits += l.Units
		t.TotalOrders += l.Orders
	}
}

// Validate checks the key, the presence of lines and their amounts.
func (t TargetSales) Validate() error {
	if err := t.Key.validate(true); err != nil {
		return err
	}
	if len(t.Lines) == 0 {
		return &validation.Error{Message: MsgNoTargetLines}
	}
	seen := map[string]bool{}
	for _, l := range t.Lines {
		if l.SKU == "" {
			return &validation.Error{Message: validation.MsgRequiredFields, Fields: []string{"sku"}}
		}
		if seen[l.SKU] {
			return validation.Failf("product %s is listed more than once", l.SKU)
		}
		seen[l.SKU] = true
		if l.Revenue < 0 || l.Orders < 0 || l.Units < 0 || l.Price < 0 {
			return validation.Failf("product %s has a negative amount", l.SKU)
		}
	}
	return nil
}

package sales

import (
	"fmt"
	"strconv"

	"github.com/iwvelando/marui-portal/pkg/format"
	"github.com/iwvelando/marui-portal/pkg/output"
)

const noTarget = "No Target"

// TargetTable lays out sales targets, one row per target.
func TargetTable(title string, targets []TargetSales) output.Table {
	t := output.Table{
		Title:   title,
		Headers: []string{"Period", "Brand", "Channel", "Products", "Target Revenue", "Target Unit", "Target Order", "Created By"},
	}
	for _, ts := range targets {
		t.Rows = append(t.Rows, []string{
			ts.Period(),
			ts.Brand,
			ts.Channel,
			strconv.Itoa(len(ts.Lines)),
			format.Currency(ts.TotalRevenue),
			format.Number(ts.TotalUnits),
			format.Number(ts.TotalOrders),
			ts.CreatedBy,
		})
	}
	return t
}

// ReportTable lays out actual sales compared with their targets.
func ReportTable(title string, reports []Report) output.Table {
	t := output.Table{
		Title:   title,
		Headers: []string{"Period", "Brand", "Channel", "Data Source", "Actual Revenue", "Target Revenue", "Achievement", "Status"},
	}
	for _, r := range reports {
		target := noTarget
		if r.TotalTargetRevenue != nil {
			target = format.Currency(*r.TotalTargetRevenue)
		}
		t.Rows = append(t.Rows, []string{
			r.Period(),
			r.Brand,
			r.Channel,
			r.DataSource,
			format.Currency(r.TotalRevenue),
			target,
			format.OptionalPercent(r.OverallAchievement, "-"),
			string(r.Status),
		})
	}
	return t
}

// CampaignTable lays out campaigns with their estimates.
func CampaignTable(title string, campaigns []Campaign) output.Table {
	t := output.Table{
		Title:   title,
		Headers: []string{"Campaign", "Period", "Brand", "Platform", "Ads Budget", "Expected Revenue", "Est. Order", "Status"},
	}
	for _, c := range campaigns {
		t.Rows = append(t.Rows, []string{
			c.Name,
			c.Period(),
			c.Brand,
			c.AdsPlatform,
			format.Currency(c.AdsBudget),
			format.Currency(c.ExpectedRevenue),
			format.Number(c.EstimatedOrders),
			string(c.Status),
		})
	}
	return t
}

func segmentTable(title string, segs []Segment) output.Table {
	t := output.Table{Title: title, Headers: []string{"Segment", "Target", "Actual", "Achievement", "Status"}}
	for _, s := range segs {
		t.Rows = append(t.Rows, []string{
			s.Name, format.Currency(s.Target), format.Currency(s.Actual), format.OptionalPercent(s.Achievement, "-"), string(s.Status),
		})
	}
	return t
}

// DashboardTables lays out the sales dashboard as a set of tables.
func DashboardTables(d Dashboard) []output.Table {
	year := "all years"
	if d.Year > 0 {
		year = strconv.Itoa(d.Year)
	}
	summary := output.Table{
		Title:   fmt.Sprintf("Sales Dashboard - %s / %s %s", d.BrandCode, d.Channel, year),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Target", format.CompactCurrency(d.TotalTarget)},
			{"Total Actual", format.CompactCurrency(d.TotalActual)},
			{"Achievement", format.OptionalPercent(d.Achievement, noTarget)},
			{"Sales Gap", format.CompactCurrency(d.Gap)},
			{"Avg Monthly Sales", format.CompactCurrency(d.AvgMonthlySales)},
			{"Projected Year End", format.CompactCurrency(d.ProjectedYearEnd)},
			{"Projected Achievement", format.OptionalPercent(d.ProjectedAchievement, noTarget)},
		},
	}

	trend := output.Table{Title: "Trend", Headers: []string{"Period", "Target", "Actual", "Achievement"}}
	for _, p := range d.Trend {
		trend.Rows = append(trend.Rows, []string{
			p.Label, format.Currency(p.Target), format.Currency(p.Actual), format.OptionalPercent(p.Achievement, "-"),
		})
	}

	return []output.Table{
		summary,
		trend,
		segmentTable("Brand Performance", d.Brands),
		segmentTable("Channel Performance", d.Channels),
		segmentTable("Critical Underperformance", d.Critical),
		segmentTable("Top Performers", d.TopPerformers),
	}
}

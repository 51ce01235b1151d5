package budget

import (
	"fmt"
	"strconv"

	"github.com/iwvelando/marui-portal/pkg/format"
	"github.com/iwvelando/marui-portal/pkg/output"
)

// PlanTable lays out budget plans with their quarter rollup.
func PlanTable(title string, plans []BudgetRecord) output.Table {
	t := output.Table{
		Title:   title,
		Headers: []string{"Year", "Division", "Activity", "Q1", "Q2", "Q3", "Q4", "Total", "Uploaded By"},
	}
	for _, p := range plans {
		q := p.Quarterly()
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(p.Year),
			p.Division,
			p.Activity,
			format.Currency(q.Q1),
			format.Currency(q.Q2),
			format.Currency(q.Q3),
			format.Currency(q.Q4),
			format.Currency(q.Total),
			p.UploadedBy,
		})
	}
	return t
}

// ActualTable lays out recorded actuals.
func ActualTable(title string, actuals []ActualRecord) output.Table {
	t := output.Table{
		Title:   title,
		Headers: []string{"Year", "Division", "Activity", "Month", "Actual Amount", "Source", "Input By", "Input Date"},
	}
	for _, a := range actuals {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(a.Year),
			a.Division,
			a.Activity,
			a.Month.Short(),
			format.Currency(a.Amount),
			string(a.Source),
			a.InputBy,
			a.InputDate,
		})
	}
	return t
}

// DashboardTables lays out the budget dashboard as a set of tables.
func DashboardTables(d Dashboard) []output.Table {
	year := "all years"
	if d.Year > 0 {
		year = strconv.Itoa(d.Year)
	}
	summary := output.Table{
		Title:   fmt.Sprintf("Budget Dashboard - %s %s", d.Division, year),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Budget", format.CompactCurrency(d.TotalBudget)},
			{"Total Actual", format.CompactCurrency(d.TotalActual)},
			{"Remaining Budget", format.CompactCurrency(d.Remaining)},
			{"Utilization Rate", format.OptionalPercent(d.Utilization, "no data")},
			{"At Risk Activities", strconv.Itoa(d.AtRiskCount)},
			{"Avg Monthly Burn Rate", format.CompactCurrency(d.BurnRate)},
			{"Annual Run Rate", format.CompactCurrency(d.RunRate)},
		},
	}

	quarterly := output.Table{Title: "Quarterly", Headers: []string{"Quarter", "Budget", "Actual"}}
	for _, q := range d.Quarterly {
		quarterly.Rows = append(quarterly.Rows, []string{q.Quarter, format.Currency(q.Budget), format.Currency(q.Actual)})
	}

	divisions := output.Table{Title: "Division Utilization", Headers: []string{"Division", "Budget", "Actual", "Utilization"}}
	for _, u := range d.DivisionUtilization {
		divisions.Rows = append(divisions.Rows, []string{
			u.Division, format.Currency(u.Budget), format.Currency(u.Actual), format.OptionalPercent(u.Utilization, "no data"),
		})
	}

	top := output.Table{Title: "Top Activities", Headers: []string{"Activity", "Division", "Actual"}}
	for _, a := range d.TopActivities {
		top.Rows = append(top.Rows, []string{a.Activity, a.Division, format.Currency(a.Actual)})
	}

	risks := output.Table{Title: "Risk Alerts", Headers: []string{"Activity", "Division", "Budget", "Actual", "Utilization", "Status"}}
	for _, r := range d.RiskAlerts {
		risks.Rows = append(risks.Rows, []string{
			r.Activity, r.Division, format.Currency(r.Budget), format.Currency(r.Actual), format.Percent(r.Utilization), string(r.Status),
		})
	}

	return []output.Table{summary, quarterly, divisions, top, risks}
}

package sales

import (
	"testing"
)

func TestReportTable(t *testing.T) {
	target := headerTarget()
	reports := []Report{Evaluate(gendesActual(), &target), Evaluate(gendesActual(), nil)}
	table := ReportTable("Actual Sales", reports)

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if got := table.Rows[0][6]; got != "110.0%" {
		t.Errorf("achievement cell = %q", got)
	}
	if got := table.Rows[1][5]; got != noTarget {
		t.Errorf("target cell = %q, expected %q", got, noTarget)
	}
	if got := table.Rows[1][7]; got != "No Target" {
		t.Errorf("status cell = %q", got)
	}
}

func TestSalesDashboardTables(t *testing.T) {
	targets, actuals := dashboardRecords()
	tables := DashboardTables(BuildDashboard(targets, actuals, DashboardOptions{Year: 2026}))
	if len(tables) != 6 {
		t.Fatalf("expected 6 tables, got %d", len(tables))
	}
	if tables[0].Title != "Sales Dashboard - All / All 2026" {
		t.Errorf("title = %q", tables[0].Title)
	}
	if got := tables[0].Rows[2][1]; got != "100.0%" {
		t.Errorf("achievement = %q", got)
	}
	if len(tables[4].Rows) != 1 || tables[4].Rows[0][0] != "Kavela - TikTok Shop" {
		t.Errorf("critical rows = %v", tables[4].Rows)
	}
}

package sales

import (
	"testing"

	"github.com/iwvelando/marui-portal/internal/metrics"
	"github.com/iwvelando/marui-portal/pkg/datetime"
)

func gendesActual() ActualSales {
	return ActualSales{
		Key:        gendesKey(),
		Brand:      "Gendes",
		DataSource: SourceMarketplaceReport,
		Lines: []ActualLine{
			{SKU: "GEN-FCH-001", Orders: 450, Units: 2200, Revenue: 77000000},
			{SKU: "GEN-SAF-002", Orders: 450, Units: 2200, Revenue: 88000000},
		},
	}
}

func headerTarget() TargetSales {
	return TargetSales{
		Key:          gendesKey(),
		Brand:        "Gendes",
		TotalRevenue: 150000000,
		Lines: []TargetLine{
			{SKU: "GEN-FCH-001", Revenue: 70000000, Orders: 400, Units: 2000},
			{SKU: "GEN-SAF-002", Revenue: 80000000, Orders: 400, Units: 2000},
		},
	}
}

func TestActualLineAverages(t *testing.T) {
	l := ActualLine{Orders: 450, Units: 2200, Revenue: 77000000}
	if got := l.AvgSellingPrice(); got != 35000 {
		t.Errorf("AvgSellingPrice() = %v", got)
	}
	if got := metrics.DisplayPercent(l.AvgUnitPerOrder()); got != 4.9 {
		t.Errorf("AvgUnitPerOrder() = %v", got)
	}
	var empty ActualLine
	if empty.AvgUnitPerOrder() != 0 || empty.AvgSellingPrice() != 0 {
		t.Error("expected zero averages without orders or units")
	}
}

func TestEvaluate(t *testing.T) {
	target := headerTarget()
	r := Evaluate(gendesActual(), &target)

	if r.TotalRevenue != 165000000 || r.TotalOrders != 900 || r.TotalUnits != 4400 {
		t.Errorf("totals = %v / %v / %v", r.TotalRevenue, r.TotalOrders, r.TotalUnits)
	}
	if r.OverallAchievement == nil || metrics.DisplayPercent(*r.OverallAchievement) != 110 {
		t.Fatalf("OverallAchievement = %v, expected 110", r.OverallAchievement)
	}
	if r.Status != metrics.StatusAchieved {
		t.Errorf("Status = %q", r.Status)
	}
	if len(r.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(r.Results))
	}
	first := r.Results[0]
	if first.AchievementRevenue == nil || metrics.DisplayPercent(*first.AchievementRevenue) != 110 {
		t.Errorf("line revenue achievement = %v", first.AchievementRevenue)
	}
	if first.AchievementOrder == nil || *first.AchievementOrder != 112.5 {
		t.Errorf("line order achievement = %v", first.AchievementOrder)
	}
}

func TestEvaluateWithoutTarget(t *testing.T) {
	a := gendesActual()
	a.Month = datetime.March
	r := Evaluate(a, nil)
	if r.OverallAchievement != nil || r.TotalTargetRevenue != nil {
		t.Errorf("expected no achievement, got %v", r.OverallAchievement)
	}
	if r.Status != metrics.StatusNoTarget {
		t.Errorf("Status = %q, expected %q", r.Status, metrics.StatusNoTarget)
	}
	for _, res := range r.Results {
		if res.AchievementRevenue != nil || res.Status != metrics.StatusNoTarget {
			t.Errorf("line %s has achievement %v", res.SKU, res.AchievementRevenue)
		}
	}
}

func TestEvaluateUnmatchedLine(t *testing.T) {
	target := headerTarget()
	target.Lines = target.Lines[:1]
	r := Evaluate(gendesActual(), &target)
	if r.Results[0].AchievementRevenue == nil {
		t.Error("matched line should have an achievement")
	}
	if r.Results[1].AchievementRevenue != nil {
		t.Error("unmatched line should have no achievement")
	}
}

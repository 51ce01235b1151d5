package metrics

import (
	"math"
	"testing"

	"github.com/iwvelando/marui-portal/pkg/mathutil"
)

func TestQuarterlyRollup(t *testing.T) {
	tests := []struct {
		name     string
		monthly  Monthly
		expected Quarterly
	}{
		{
			name: "AWS Cloud Services",
			monthly: Monthly{
				8500000, 8500000, 8500000,
				9000000, 9000000, 9000000,
				9500000, 9500000, 9500000,
				10000000, 10000000, 10000000,
			},
			expected: Quarterly{Q1: 25500000, Q2: 27000000, Q3: 28500000, Q4: 30000000, Total: 111000000},
		},
		{
			name:     "Single month",
			monthly:  Monthly{230000},
			expected: Quarterly{Q1: 230000, Total: 230000},
		},
		{
			name:     "Empty year",
			monthly:  Monthly{},
			expected: Quarterly{},
		},
		{
			name:     "Quarter end months",
			monthly:  Monthly{0, 0, 25000000, 0, 0, 25000000, 0, 0, 25000000, 0, 0, 25000000},
			expected: Quarterly{Q1: 25000000, Q2: 25000000, Q3: 25000000, Q4: 25000000, Total: 100000000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuarterlyRollup(tt.monthly)
			if got != tt.expected {
				t.Errorf("QuarterlyRollup() = %+v, expected %+v", got, tt.expected)
			}
			if got.Total != tt.monthly.Total() {
				t.Errorf("rollup total %v != monthly total %v", got.Total, tt.monthly.Total())
			}
			if got.Total != got.Q1+got.Q2+got.Q3+got.Q4 {
				t.Errorf("rollup total %v != sum of quarters", got.Total)
			}
		})
	}
}

func TestUtilization(t *testing.T) {
	tests := []struct {
		name     string
		actual   float64
		budget   float64
		expected float64
		ok       bool
	}{
		{name: "Portfolio", actual: 242000000, budget: 282000000, expected: 85.8, ok: true},
		{name: "Overspend", actual: 112500000, budget: 111000000, expected: 101.4, ok: true},
		{name: "Exact", actual: 230000, budget: 230000, expected: 100, ok: true},
		{name: "Nothing spent", actual: 0, budget: 5000000, expected: 0, ok: true},
		{name: "Zero budget", actual: 1000, budget: 0, ok: false},
		{name: "Sub-cent budget", actual: 1000, budget: 0.004, ok: false},
		{name: "Negative budget", actual: 1000, budget: -5, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Utilization(tt.actual, tt.budget)
			if ok != tt.ok {
				t.Fatalf("Utilization() ok = %v, expected %v", ok, tt.ok)
			}
			if ok && DisplayPercent(got) != tt.expected {
				t.Errorf("Utilization() = %v (display %v), expected %v", got, DisplayPercent(got), tt.expected)
			}
		})
	}
}

func TestUtilizationOverspendIsAchievedBand(t *testing.T) {
	pct, ok := Utilization(112500000, 111000000)
	if !ok {
		t.Fatal("expected defined utilization")
	}
	if !mathutil.WithinTolerance(pct, 101.35, 0.01) {
		t.Errorf("Utilization() = %v, expected about 101.35", pct)
	}
	if got := Classify(pct); got != BandAchieved {
		t.Errorf("Classify(%v) = %v, expected %v", pct, got, BandAchieved)
	}
	if got := BudgetRiskOf(pct); got != RiskDanger {
		t.Errorf("BudgetRiskOf(%v) = %v, expected %v", pct, got, RiskDanger)
	}
}

func TestAchievement(t *testing.T) {
	if got, ok := Achievement(150, 100); !ok || got != 150 {
		t.Errorf("Achievement(150, 100) = %v, %v", got, ok)
	}
	if _, ok := Achievement(150, 0); ok {
		t.Error("Achievement with zero target must be undefined")
	}
	if got, ok := Achievement(165000000, 150000000); !ok || DisplayPercent(got) != 110 {
		t.Errorf("Achievement(165M, 150M) = %v, %v", got, ok)
	}
}

func TestDisplayOptional(t *testing.T) {
	if got := DisplayOptional(nil); got != nil {
		t.Errorf("DisplayOptional(nil) = %v, expected nil", *got)
	}
	pct := 101.35135135
	if got := DisplayOptional(&pct); got == nil || *got != 101.4 {
		t.Errorf("DisplayOptional(101.351...) = %v, expected 101.4", got)
	}
	if pct != 101.35135135 {
		t.Errorf("DisplayOptional modified its input: %v", pct)
	}
}

func TestOptionalAchievement(t *testing.T) {
	zero := 0.0
	target := 120000000.0

	if got := OptionalAchievement(100, nil); got != nil {
		t.Errorf("nil target: expected nil, got %v", *got)
	}
	if got := OptionalAchievement(100, &zero); got != nil {
		t.Errorf("zero target: expected nil, got %v", *got)
	}
	got := OptionalAchievement(105000000, &target)
	if got == nil || *got != 87.5 {
		t.Errorf("OptionalAchievement(105M, 120M) = %v, expected 87.5", got)
	}
}

func TestRemainingAndGap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		expect float64
	}{
		{name: "Under", a: 282000000, b: 242000000, expect: 40000000},
		{name: "Over", a: 111000000, b: 112500000, expect: -1500000},
		{name: "Equal", a: 5, b: 5, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemainingBudget(tt.a, tt.b); got != tt.expect {
				t.Errorf("RemainingBudget() = %v, expected %v", got, tt.expect)
			}
			if got := SalesGap(tt.a, tt.b); got != tt.expect {
				t.Errorf("SalesGap() = %v, expected %v", got, tt.expect)
			}
		})
	}
}

func TestBurnRate(t *testing.T) {
	tests := []struct {
		name     string
		recent   []float64
		window   int
		expected float64
		ok       bool
	}{
		{name: "Last three of five", recent: []float64{1, 2, 3, 6, 9}, window: 3, expected: 6, ok: true},
		{name: "Fewer than window", recent: []float64{10, 20}, window: 3, expected: 15, ok: true},
		{name: "Default window", recent: []float64{4, 4, 4, 8}, window: 0, expected: 16.0 / 3, ok: true},
		{name: "Empty", recent: nil, window: 3, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BurnRate(tt.recent, tt.window)
			if ok != tt.ok {
				t.Fatalf("BurnRate() ok = %v, expected %v", ok, tt.ok)
			}
			if ok && math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("BurnRate() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRunRateProjection(t *testing.T) {
	if got := RunRate(10000000); got != 120000000 {
		t.Errorf("RunRate() = %v", got)
	}
	pct, ok := ProjectedAchievement(10000000, 240000000)
	if !ok || pct != 50 {
		t.Errorf("ProjectedAchievement() = %v, %v", pct, ok)
	}
	if _, ok := ProjectedAchievement(10000000, 0); ok {
		t.Error("projection against zero target must be undefined")
	}
}

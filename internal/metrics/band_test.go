package metrics

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		pct    float64
		band   Band
		status SalesStatus
		risk   BudgetRisk
	}{
		{pct: 150, band: BandAchieved, status: StatusAchieved, risk: RiskDanger},
		{pct: 100, band: BandAchieved, status: StatusAchieved, risk: RiskDanger},
		{pct: 99.99, band: BandNear, status: StatusNearTarget, risk: RiskWarning},
		{pct: 90, band: BandNear, status: StatusNearTarget, risk: RiskWarning},
		{pct: 89.9, band: BandUnder, status: StatusUnderperform, risk: RiskNormal},
		{pct: 0, band: BandUnder, status: StatusUnderperform, risk: RiskNormal},
	}

	for _, tt := range tests {
		t.Run(tt.band.String(), func(t *testing.T) {
			if got := Classify(tt.pct); got != tt.band {
				t.Errorf("Classify(%v) = %v, expected %v", tt.pct, got, tt.band)
			}
			pct := tt.pct
			if got := SalesStatusOf(&pct); got != tt.status {
				t.Errorf("SalesStatusOf(%v) = %v, expected %v", tt.pct, got, tt.status)
			}
			if got := BudgetRiskOf(tt.pct); got != tt.risk {
				t.Errorf("BudgetRiskOf(%v) = %v, expected %v", tt.pct, got, tt.risk)
			}
		})
	}
}

func TestSalesStatusNoTarget(t *testing.T) {
	if got := SalesStatusOf(nil); got != StatusNoTarget {
		t.Errorf("SalesStatusOf(nil) = %v, expected %v", got, StatusNoTarget)
	}
}

package metrics

import (
	"fmt"

	"github.com/iwvelando/marui-portal/pkg/constants"
)

// Band is a performance bucket for a percentage.
type Band int

const (
	// BandUnder is below the near-target threshold.
	BandUnder Band = iota
	// BandNear is at or above the near-target threshold but below 100.
	BandNear
	// BandAchieved is 100 or more.
	BandAchieved
)

// Classify places pct into a band. Lower edges are inclusive.
func Classify(pct float64) Band {
	switch {
	case pct >= constants.AchievedThreshold:
		return BandAchieved
	case pct >= constants.NearTargetThreshold:
		return BandNear
	default:
		return BandUnder
	}
}

func (b Band) String() string {
	switch b {
	case BandAchieved:
		return "achieved"
	case BandNear:
		return "near"
	case BandUnder:
		return "under"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// SalesStatus is the label shown next to a sales achievement.
type SalesStatus string

const (
	StatusAchieved     SalesStatus = "Achieved"
	StatusNearTarget   SalesStatus = "Near Target"
	StatusUnderperform SalesStatus = "Underperform"
	StatusNoTarget     SalesStatus = "No Target"
)

// SalesStatusOf labels an optional achievement percentage.
func SalesStatusOf(pct *float64) SalesStatus {
	if pct == nil {
		return StatusNoTarget
	}
	switch Classify(*pct) {
	case BandAchieved:
		return StatusAchieved
	case BandNear:
		return StatusNearTarget
	case BandUnder:
		return StatusUnderperform
	}
	return StatusNoTarget
}

// BudgetRisk is the tone used for budget utilization. Spending at or above
// the full budget is the dangerous end, the opposite of sales.
type BudgetRisk string

const (
	RiskDanger  BudgetRisk = "danger"
	RiskWarning BudgetRisk = "warning"
	RiskNormal  BudgetRisk = "normal"
)

// BudgetRiskOf returns the tone for a utilization percentage.
func BudgetRiskOf(utilization float64) BudgetRisk {
	switch Classify(utilization) {
	case BandAchieved:
		return RiskDanger
	case BandNear:
		return RiskWarning
	case BandUnder:
		return RiskNormal
	}
	return RiskNormal
}

// Package metrics derives the figures shown across the budgeting and sales
// pages: quarterly rollups, utilization and achievement rates, gaps, burn rate
// and run-rate projections.
package metrics

import (
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/datetime"
	"github.com/iwvelando/marui-portal/pkg/mathutil"
)

// Monthly holds one amount per calendar month, January first.
type Monthly [constants.MonthsPerYear]float64

// Total returns the sum of all twelve months.
func (m Monthly) Total() float64 {
	return mathutil.Sum(m[:])
}

// Quarterly is a rollup of twelve monthly amounts.
type Quarterly struct {
	Q1    float64 `json:"q1"`
	Q2    float64 `json:"q2"`
	Q3    float64 `json:"q3"`
	Q4    float64 `json:"q4"`
	Total float64 `json:"total"`
}

// Quarters returns the four quarter sums in order.
func (q Quarterly) Quarters() [constants.QuartersPerYear]float64 {
	return [constants.QuartersPerYear]float64{q.Q1, q.Q2, q.Q3, q.Q4}
}

// QuarterlyRollup sums months into quarters. Total is the sum of the quarters
// so Total == Q1+Q2+Q3+Q4 holds exactly. No rounding is applied.
func QuarterlyRollup(m Monthly) Quarterly {
	var q [constants.QuartersPerYear]float64
	for _, month := range datetime.Months {
		q[month.Quarter()-1] += m[month.Index()]
	}
	return Quarterly{
		Q1:    q[0],
		Q2:    q[1],
		Q3:    q[2],
		Q4:    q[3],
		Total: q[0] + q[1] + q[2] + q[3],
	}
}

// percentOf returns 100 * part / whole, or false when whole is not positive
// or below a cent.
func percentOf(part, whole float64) (float64, bool) {
	if whole <= 0 || mathutil.IsZero(whole) {
		return 0, false
	}
	return part / whole * constants.PercentageMultiplier, true
}

// Utilization returns the share of budget spent as a percentage. The result
// is undefined (ok=false) when budget is zero.
func Utilization(actual, budget float64) (float64, bool) {
	return percentOf(actual, budget)
}

// Achievement returns actual as a percentage of target. The result is
// undefined (ok=false) when target is zero.
func Achievement(actual, target float64) (float64, bool) {
	return percentOf(actual, target)
}

// OptionalAchievement is Achievement for a target that may be absent. It
// returns nil when target is nil or zero.
func OptionalAchievement(actual float64, target *float64) *float64 {
	if target == nil {
		return nil
	}
	pct, ok := Achievement(actual, *target)
	if !ok {
		return nil
	}
	return &pct
}

// RemainingBudget is the unspent part of budget. It goes negative on overspend.
func RemainingBudget(budget, actual float64) float64 {
	return budget - actual
}

// SalesGap is how far actual revenue falls short of target. It goes negative
// when the target is exceeded.
func SalesGap(target, actual float64) float64 {
	return target - actual
}

// BurnRate is the mean of the last window values of recent. When fewer values
// exist all of them are averaged. It returns false for an empty input.
func BurnRate(recent []float64, window int) (float64, bool) {
	if window <= 0 {
		window = constants.DefaultBurnRateWindow
	}
	if len(recent) > window {
		recent = recent[len(recent)-window:]
	}
	return mathutil.Mean(recent)
}

// RunRate annualises a monthly average.
func RunRate(monthlyAverage float64) float64 {
	return monthlyAverage * constants.MonthsPerYear
}

// ProjectedAchievement compares the annual run rate against an annual target.
func ProjectedAchievement(monthlyAverage, annualTarget float64) (float64, bool) {
	return Achievement(RunRate(monthlyAverage), annualTarget)
}

// DisplayPercent rounds a percentage to the precision shown on screen.
func DisplayPercent(pct float64) float64 {
	return mathutil.RoundTo(pct, constants.DisplayDecimals)
}

// DisplayOptional rounds an optional percentage, keeping nil as nil.
func DisplayOptional(pct *float64) *float64 {
	if pct == nil {
		return nil
	}
	v := DisplayPercent(*pct)
	return &v
}

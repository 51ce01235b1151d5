// Package budget holds planned budgets and recorded actual spending per
// division and activity, and derives the budget dashboard from them.
package budget

import (
	"fmt"
	"strconv"

	"github.com/iwvelando/marui-portal/internal/metrics"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/datetime"
	"github.com/iwvelando/marui-portal/pkg/validation"
)

// Source records how an actual entered the portal.
type Source string

// Actual sources.
const (
	SourceUpload Source = "Upload"
	SourceManual Source = "Manual"
)

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	return s == SourceUpload || s == SourceManual
}

// BudgetRecord is the planned spending of one activity for one year.
type BudgetRecord struct {
	ID           string          `json:"id"`
	Year         int             `json:"year"`
	Division     string          `json:"division"`
	Activity     string          `json:"activity"`
	Description  string          `json:"description"`
	Months       metrics.Monthly `json:"months"`
	UploadedBy   string          `json:"uploadedBy"`
	UploadedDate string          `json:"uploadedDate"`
}

// OwnerDivision returns the division the plan belongs to.
func (b BudgetRecord) OwnerDivision() string { return b.Division }

// Quarterly returns the quarter rollup of the plan.
func (b BudgetRecord) Quarterly() metrics.Quarterly {
	return metrics.QuarterlyRollup(b.Months)
}

// Total returns the annual planned amount.
func (b BudgetRecord) Total() float64 {
	return b.Months.Total()
}

// Validate checks required fields and amounts.
func (b BudgetRecord) Validate() error {
	if err := validation.Required(
		validation.Field{Name: "year", Value: yearValue(b.Year)},
		validation.Field{Name: "division", Value: b.Division},
		validation.Field{Name: "activity", Value: b.Activity},
	); err != nil {
		return err
	}
	for i, amount := range b.Months {
		if amount < 0 {
			return validation.Failf("%s amount must not be negative", datetime.Months[i].Short())
		}
	}
	return nil
}

// ActualRecord is money spent on an activity in one month.
type ActualRecord struct {
	ID          string         `json:"id"`
	Year        int            `json:"year"`
	Division    string         `json:"division"`
	Activity    string         `json:"activity"`
	Month       datetime.Month `json:"month"`
	Amount      float64        `json:"actualAmount"`
	Description string         `json:"description"`
	InputBy     string         `json:"inputBy"`
	InputDate   string         `json:"inputDate"`
	Source      Source         `json:"source"`
}

// OwnerDivision returns the division the actual belongs to.
func (a ActualRecord) OwnerDivision() string { return a.Division }

// sameSlot reports whether a and other cover the same activity month.
func (a ActualRecord) sameSlot(other ActualRecord) bool {
	return a.Year == other.Year &&
		a.Division == other.Division &&
		a.Activity == other.Activity &&
		a.Month == other.Month
}

// Validate checks required fields and amounts.
func (a ActualRecord) Validate() error {
	month := ""
	if a.Month.Valid() {
		month = a.Month.Short()
	}
	if err := validation.Required(
		validation.Field{Name: "year", Value: yearValue(a.Year)},
		validation.Field{Name: "division", Value: a.Division},
		validation.Field{Name: "activity", Value: a.Activity},
		validation.Field{Name: "month", Value: month},
	); err != nil {
		return err
	}
	if a.Amount < 0 {
		return validation.Failf("actual amount must not be negative")
	}
	if a.Source != "" && !a.Source.Valid() {
		return validation.Failf("unknown source %q", string(a.Source))
	}
	return nil
}

func yearValue(year int) string {
	if year <= 0 {
		return ""
	}
	return strconv.Itoa(year)
}

// Filter narrows budget and actual listings. Zero or "All" values match
// everything.
type Filter struct {
	Year     int    `json:"year,omitempty"`
	Division string `json:"division,omitempty"`
	Activity string `json:"activity,omitempty"`
}

func (f Filter) String() string {
	return fmt.Sprintf("year=%d division=%q activity=%q", f.Year, f.Division, f.Activity)
}

func matchText(want, got string) bool {
	return want == "" || want == constants.FilterAll || want == got
}

func (f Filter) matches(year int, division, activity string) bool {
	return (f.Year <= 0 || f.Year == year) &&
		matchText(f.Division, division) &&
		matchText(f.Activity, activity)
}

// MatchPlan reports whether b passes the filter.
func (f Filter) MatchPlan(b BudgetRecord) bool {
	return f.matches(b.Year, b.Division, b.Activity)
}

// MatchActual reports whether a passes the filter.
func (f Filter) MatchActual(a ActualRecord) bool {
	return f.matches(a.Year, a.Division, a.Activity)
}

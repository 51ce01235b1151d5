package budget

import (
	"sort"
	"strconv"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/metrics"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/datetime"
)

// DashboardOptions select and tune the budget dashboard.
type DashboardOptions struct {
	Year           int
	Division       string
	BurnRateWindow int
	RiskThreshold  float64
	TopActivities  int
}

func (o DashboardOptions) withDefaults() DashboardOptions {
	if o.BurnRateWindow <= 0 {
		o.BurnRateWindow = constants.DefaultBurnRateWindow
	}
	if o.RiskThreshold <= 0 {
		o.RiskThreshold = constants.DefaultRiskThreshold
	}
	if o.TopActivities <= 0 {
		o.TopActivities = constants.DefaultTopActivities
	}
	return o
}

// MonthPoint is the planned and actual spend of one month.
type MonthPoint struct {
	Month  datetime.Month `json:"month"`
	Budget float64        `json:"budget"`
	Actual float64        `json:"actual"`
}

// QuarterPoint is the planned and actual spend of one quarter.
type QuarterPoint struct {
	Quarter string  `json:"quarter"`
	Budget  float64 `json:"budget"`
	Actual  float64 `json:"actual"`
}

// DivisionUsage is the utilization of one division.
type DivisionUsage struct {
	Division           string   `json:"division"`
	Budget             float64  `json:"budget"`
	Actual             float64  `json:"actual"`
	Utilization        *float64 `json:"utilization"`
	UtilizationDisplay *float64 `json:"utilizationDisplay"`
}

// ActivitySpend is the actual spend of one activity.
type ActivitySpend struct {
	Activity string  `json:"activity"`
	Division string  `json:"division"`
	Actual   float64 `json:"actual"`
}

// RiskAlert flags an activity whose utilization reached the risk threshold.
type RiskAlert struct {
	Activity           string             `json:"activity"`
	Division           string             `json:"division"`
	Budget             float64            `json:"budget"`
	Actual             float64            `json:"actual"`
	Utilization        float64            `json:"utilization"`
	UtilizationDisplay float64            `json:"utilizationDisplay"`
	Status             metrics.BudgetRisk `json:"status"`
}

// Dashboard is the budget overview for one year and division selection.
type Dashboard struct {
	Year                int             `json:"year"`
	Division            string          `json:"division"`
	TotalBudget         float64         `json:"totalBudget"`
	TotalActual         float64         `json:"totalActual"`
	Remaining           float64         `json:"remaining"`
	Utilization         *float64        `json:"utilization"`
	UtilizationDisplay  *float64        `json:"utilizationDisplay"`
	AtRiskCount         int             `json:"atRiskCount"`
	BurnRate            float64         `json:"burnRate"`
	RunRate             float64         `json:"runRate"`
	MonthlyTrend        []MonthPoint    `json:"monthlyTrend"`
	Quarterly           []QuarterPoint  `json:"quarterly"`
	DivisionUtilization []DivisionUsage `json:"divisionUtilization"`
	TopActivities       []ActivitySpend `json:"topActivities"`
	RiskAlerts          []RiskAlert     `json:"riskAlerts"`
}

// Dashboard builds the budget dashboard from the records visible to role.
// A zero Year selects the latest year on record, since months of different
// years cannot share one trend.
func (l *Ledger) Dashboard(role access.Role, opts DashboardOptions) Dashboard {
	if opts.Year == 0 {
		opts.Year = latestYear(l.Years())
	}
	filter := Filter{Year: opts.Year, Division: opts.Division}
	return BuildDashboard(l.Plans(role, filter), l.Actuals(role, filter), opts)
}

func latestYear(years []int) int {
	if len(years) == 0 {
		return 0
	}
	return years[len(years)-1]
}

type activityKey struct {
	division string
	activity string
}

// BuildDashboard derives the budget dashboard from already filtered plans
// and actuals.
func BuildDashboard(plans []BudgetRecord, actuals []ActualRecord, opts DashboardOptions) Dashboard {
	opts = opts.withDefaults()
	division := opts.Division
	if division == "" {
		division = constants.FilterAll
	}
	d := Dashboard{Year: opts.Year, Division: division}

	var budgetByMonth, actualByMonth metrics.Monthly
	budgetByActivity := map[activityKey]float64{}
	actualByActivity := map[activityKey]float64{}
	budgetByDivision := map[string]float64{}
	actualByDivision := map[string]float64{}
	var order []activityKey
	var divisions []string
	noteActivity := func(k activityKey) {
		if _, ok := budgetByActivity[k]; !ok {
			if _, ok := actualByActivity[k]; !ok {
				order = append(order, k)
			}
		}
	}
	noteDivision := func(name string) {
		if _, ok := budgetByDivision[name]; !ok {
			if _, ok := actualByDivision[name]; !ok {
				divisions = append(divisions, name)
			}
		}
	}

	for _, p := range plans {
		k := activityKey{p.Division, p.Activity}
		noteActivity(k)
		noteDivision(p.Division)
		total := p.Total()
		budgetByActivity[k] += total
		budgetByDivision[p.Division] += total
		for i, amount := range p.Months {
			budgetByMonth[i] += amount
		}
	}
	for _, a := range actuals {
		if !a.Month.Valid() {
			continue
		}
		k := activityKey{a.Division, a.Activity}
		noteActivity(k)
		noteDivision(a.Division)
		actualByActivity[k] += a.Amount
		actualByDivision[a.Division] += a.Amount
		actualByMonth[a.Month.Index()] += a.Amount
	}

	d.TotalBudget = budgetByMonth.Total()
	d.TotalActual = actualByMonth.Total()
	d.Remaining = metrics.RemainingBudget(d.TotalBudget, d.TotalActual)
	if pct, ok := metrics.Utilization(d.TotalActual, d.TotalBudget); ok {
		d.Utilization = &pct
	}
	d.UtilizationDisplay = metrics.DisplayOptional(d.Utilization)

	d.MonthlyTrend = make([]MonthPoint, 0, len(datetime.Months))
	for _, m := range datetime.Months {
		d.MonthlyTrend = append(d.MonthlyTrend, MonthPoint{
			Month:  m,
			Budget: budgetByMonth[m.Index()],
			Actual: actualByMonth[m.Index()],
		})
	}

	qb := metrics.QuarterlyRollup(budgetByMonth).Quarters()
	qa := metrics.QuarterlyRollup(actualByMonth).Quarters()
	for i := range qb {
		d.Quarterly = append(d.Quarterly, QuarterPoint{
			Quarter: "Q" + strconv.Itoa(i+1),
			Budget:  qb[i],
			Actual:  qa[i],
		})
	}

	d.BurnRate = burnRate(actualByMonth, opts.BurnRateWindow)
	d.RunRate = metrics.RunRate(d.BurnRate)

	for _, name := range divisions {
		usage := DivisionUsage{Division: name, Budget: budgetByDivision[name], Actual: actualByDivision[name]}
		if pct, ok := metrics.Utilization(usage.Actual, usage.Budget); ok {
			usage.Utilization = &pct
		}
		usage.UtilizationDisplay = metrics.DisplayOptional(usage.Utilization)
		d.DivisionUtilization = append(d.DivisionUtilization, usage)
	}
	sort.SliceStable(d.DivisionUtilization, func(i, j int) bool {
		return d.DivisionUtilization[i].Budget > d.DivisionUtilization[j].Budget
	})

	for _, k := range order {
		if spent := actualByActivity[k]; spent > 0 {
			d.TopActivities = append(d.TopActivities, ActivitySpend{Activity: k.activity, Division: k.division, Actual: spent})
		}
		pct, ok := metrics.Utilization(actualByActivity[k], budgetByActivity[k])
		if ok && pct >= opts.RiskThreshold {
			d.RiskAlerts = append(d.RiskAlerts, RiskAlert{
				Activity:           k.activity,
				Division:           k.division,
				Budget:             budgetByActivity[k],
				Actual:             actualByActivity[k],
				Utilization:        pct,
				UtilizationDisplay: metrics.DisplayPercent(pct),
				Status:             metrics.BudgetRiskOf(pct),
			})
		}
	}
	sort.SliceStable(d.TopActivities, func(i, j int) bool {
		return d.TopActivities[i].Actual > d.TopActivities[j].Actual
	})
	if len(d.TopActivities) > opts.TopActivities {
		d.TopActivities = d.TopActivities[:opts.TopActivities]
	}
	sort.SliceStable(d.RiskAlerts, func(i, j int) bool {
		return d.RiskAlerts[i].Utilization > d.RiskAlerts[j].Utilization
	})
	d.AtRiskCount = len(d.RiskAlerts)

	return d
}

// burnRate averages the trailing window of months ending at the latest month
// with any actual spend. Months after it have not happened yet.
func burnRate(actualByMonth metrics.Monthly, window int) float64 {
	latest := -1
	for i, amount := range actualByMonth {
		if amount > 0 {
			latest = i
		}
	}
	if latest < 0 {
		return 0
	}
	rate, _ := metrics.BurnRate(actualByMonth[:latest+1], window)
	return rate
}

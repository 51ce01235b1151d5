package sales

import (
	"fmt"
	"sort"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/metrics"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/datetime"
	"github.com/iwvelando/marui-portal/pkg/validation"
)

// Period groups the sales trend.
type Period string

// Trend periods.
const (
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

// ParsePeriod converts a query value into a Period. Empty means monthly.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case "":
		return PeriodMonthly, nil
	case PeriodMonthly, PeriodQuarterly, PeriodYearly:
		return p, nil
	}
	return "", validation.Failf("unknown period %q", s)
}

// DashboardOptions select and tune the sales dashboard.
type DashboardOptions struct {
	Year          int
	BrandCode     string
	Channel       string
	Period        Period
	TopPerformers int
}

func (o DashboardOptions) withDefaults() DashboardOptions {
	if o.Period == "" {
		o.Period = PeriodMonthly
	}
	if o.TopPerformers <= 0 {
		o.TopPerformers = constants.DefaultTopPerformers
	}
	return o
}

// Segment is the performance of one brand, channel or brand-channel pair.
type Segment struct {
	Name               string              `json:"name"`
	Brand              string              `json:"brand,omitempty"`
	Channel            string              `json:"channel,omitempty"`
	Target             float64             `json:"target"`
	Actual             float64             `json:"actual"`
	Gap                float64             `json:"gap"`
	Achievement        *float64            `json:"achievement"`
	AchievementDisplay *float64            `json:"achievementDisplay"`
	Status             metrics.SalesStatus `json:"status"`
}

// TrendPoint is the target and actual revenue of one period.
type TrendPoint struct {
	Label              string   `json:"label"`
	Target             float64  `json:"target"`
	Actual             float64  `json:"actual"`
	Achievement        *float64 `json:"achievement"`
	AchievementDisplay *float64 `json:"achievementDisplay"`
}

// Dashboard is the sales overview for one year, brand and channel selection.
type Dashboard struct {
	Year                        int                 `json:"year"`
	BrandCode                   string              `json:"brandCode"`
	Channel                     string              `json:"salesChannel"`
	Period                      Period              `json:"period"`
	TotalTarget                 float64             `json:"totalTarget"`
	TotalActual                 float64             `json:"totalActual"`
	Achievement                 *float64            `json:"achievement"`
	AchievementDisplay          *float64            `json:"achievementDisplay"`
	Gap                         float64             `json:"salesGap"`
	Status                      metrics.SalesStatus `json:"status"`
	MonthsPassed                int                 `json:"monthsPassed"`
	AvgMonthlySales             float64             `json:"avgMonthlySales"`
	ProjectedYearEnd            float64             `json:"projectedYearEnd"`
	ProjectedAchievement        *float64            `json:"projectedAchievement"`
	ProjectedAchievementDisplay *float64            `json:"projectedAchievementDisplay"`
	Trend                       []TrendPoint        `json:"trend"`
	Brands                      []Segment           `json:"brandPerformance"`
	Channels                    []Segment           `json:"channelPerformance"`
	Critical                    []Segment           `json:"criticalUnderperformance"`
	TopPerformers               []Segment           `json:"topPerformers"`
}

// Dashboard builds the sales dashboard from the records visible to role.
// A zero Year selects the latest year on record.
func (b *Book) Dashboard(role access.Role, opts DashboardOptions) Dashboard {
	if opts.Year == 0 {
		opts.Year = b.LatestYear()
	}
	filter := Filter{Year: opts.Year, BrandCode: opts.BrandCode, Channel: opts.Channel}
	return BuildDashboard(b.Targets(role, filter), b.Actuals(role, filter), opts)
}

type tally struct {
	name    string
	brand   string
	channel string
	target  float64
	actual  float64
}

// groups accumulates tallies in first-seen order.
type groups struct {
	order []string
	by    map[string]*tally
}

func newGroups() *groups {
	return &groups{by: map[string]*tally{}}
}

func (g *groups) get(name, brand, channel string) *tally {
	t, ok := g.by[name]
	if !ok {
		t = &tally{name: name, brand: brand, channel: channel}
		g.by[name] = t
		g.order = append(g.order, name)
	}
	return t
}

func (g *groups) segments() []Segment {
	out := make([]Segment, 0, len(g.order))
	for _, name := range g.order {
		t := g.by[name]
		out = append(out, newSegment(t))
	}
	return out
}

func newSegment(t *tally) Segment {
	s := Segment{
		Name:    t.name,
		Brand:   t.brand,
		Channel: t.channel,
		Target:  t.target,
		Actual:  t.actual,
		Gap:     metrics.SalesGap(t.target, t.actual),
	}
	if pct, ok := metrics.Achievement(t.actual, t.target); ok {
		s.Achievement = &pct
	}
	s.AchievementDisplay = metrics.DisplayOptional(s.Achievement)
	s.Status = metrics.SalesStatusOf(s.Achievement)
	return s
}

// lowestFirst orders segments by ascending achievement, segments without
// a target last.
func lowestFirst(segs []Segment) {
	sort.SliceStable(segs, func(i, j int) bool {
		a, b := segs[i].Achievement, segs[j].Achievement
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a < *b
	})
}

func segmentName(brand, channel string) string {
	return fmt.Sprintf("%s - %s", brand, channel)
}

func brandLabel(k Key, brand string) string {
	if brand != "" {
		return brand
	}
	return k.BrandCode
}

// BuildDashboard derives the sales dashboard from already filtered targets
// and actual sales.
func BuildDashboard(targets []TargetSales, actuals []ActualSales, opts DashboardOptions) Dashboard {
	opts = opts.withDefaults()
	d := Dashboard{
		Year:      opts.Year,
		BrandCode: opts.BrandCode,
		Channel:   opts.Channel,
		Period:    opts.Period,
	}
	if d.BrandCode == "" {
		d.BrandCode = constants.FilterAll
	}
	if d.Channel == "" {
		d.Channel = constants.FilterAll
	}

	brands, channels, pairs := newGroups(), newGroups(), newGroups()
	var targetByMonth, actualByMonth metrics.Monthly

	for _, t := range targets {
		brand := brandLabel(t.Key, t.Brand)
		brands.get(brand, brand, "").target += t.TotalRevenue
		channels.get(t.Channel, "", t.Channel).target += t.TotalRevenue
		pairs.get(segmentName(brand, t.Channel), brand, t.Channel).target += t.TotalRevenue
		if t.Month.Valid() {
			targetByMonth[t.Month.Index()] += t.TotalRevenue
		}
		d.TotalTarget += t.TotalRevenue
	}
	for _, a := range actuals {
		revenue, _, _ := a.Totals()
		brand := brandLabel(a.Key, a.Brand)
		brands.get(brand, brand, "").actual += revenue
		channels.get(a.Channel, "", a.Channel).actual += revenue
		pairs.get(segmentName(brand, a.Channel), brand, a.Channel).actual += revenue
		if a.Month.Valid() {
			actualByMonth[a.Month.Index()] += revenue
		}
		d.TotalActual += revenue
	}

	if pct, ok := metrics.Achievement(d.TotalActual, d.TotalTarget); ok {
		d.Achievement = &pct
	}
	d.AchievementDisplay = metrics.DisplayOptional(d.Achievement)
	d.Status = metrics.SalesStatusOf(d.Achievement)
	d.Gap = metrics.SalesGap(d.TotalTarget, d.TotalActual)

	for i := len(actualByMonth) - 1; i >= 0; i-- {
		if actualByMonth[i] > 0 {
			d.MonthsPassed = i + 1
			break
		}
	}
	if d.MonthsPassed > 0 {
		avg, _ := metrics.BurnRate(actualByMonth[:d.MonthsPassed], d.MonthsPassed)
		d.AvgMonthlySales = avg
		d.ProjectedYearEnd = metrics.RunRate(avg)
		if pct, ok := metrics.ProjectedAchievement(avg, d.TotalTarget); ok {
			d.ProjectedAchievement = &pct
		}
		d.ProjectedAchievementDisplay = metrics.DisplayOptional(d.ProjectedAchievement)
	}

	d.Trend = trend(opts.Period, targetByMonth, actualByMonth)

	d.Brands = brands.segments()
	lowestFirst(d.Brands)
	d.Channels = channels.segments()
	lowestFirst(d.Channels)

	segs := pairs.segments()
	d.Critical = []Segment{}
	d.TopPerformers = []Segment{}
	for _, s := range segs {
		if s.Achievement == nil {
			continue
		}
		switch metrics.Classify(*s.Achievement) {
		case metrics.BandAchieved:
			d.TopPerformers = append(d.TopPerformers, s)
		case metrics.BandNear:
		case metrics.BandUnder:
			d.Critical = append(d.Critical, s)
		}
	}
	lowestFirst(d.Critical)
	sort.SliceStable(d.TopPerformers, func(i, j int) bool {
		return *d.TopPerformers[i].Achievement > *d.TopPerformers[j].Achievement
	})
	if len(d.TopPerformers) > opts.TopPerformers {
		d.TopPerformers = d.TopPerformers[:opts.TopPerformers]
	}
	return d
}

func trendPoint(label string, target, actual float64) TrendPoint {
	p := TrendPoint{Label: label, Target: target, Actual: actual}
	if pct, ok := metrics.Achievement(actual, target); ok {
		p.Achievement = &pct
	}
	p.AchievementDisplay = metrics.DisplayOptional(p.Achievement)
	return p
}

func trend(period Period, target, actual metrics.Monthly) []TrendPoint {
	switch period {
	case PeriodQuarterly:
		tq := metrics.QuarterlyRollup(target).Quarters()
		aq := metrics.QuarterlyRollup(actual).Quarters()
		points := make([]TrendPoint, 0, len(tq))
		for i := range tq {
			points = append(points, trendPoint(fmt.Sprintf("Q%d", i+1), tq[i], aq[i]))
		}
		return points
	case PeriodYearly:
		return []TrendPoint{trendPoint("Year", target.Total(), actual.Total())}
	default:
		points := make([]TrendPoint, 0, len(datetime.Months))
		for _, m := range datetime.Months {
			points = append(points, trendPoint(m.Short(), target[m.Index()], actual[m.Index()]))
		}
		return points
	}
}

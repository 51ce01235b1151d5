package budget

import (
	"fmt"
	"sort"
	"time"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/store"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"go.uber.org/zap"
)

// Ledger keeps the budget plans and actuals of the portal in memory.
type Ledger struct {
	logger  *zap.Logger
	plans   *store.Collection[BudgetRecord]
	actuals *store.Collection[ActualRecord]
	now     func() time.Time
}

// NewLedger returns an empty ledger.
func NewLedger(logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		logger:  logger,
		plans:   store.NewCollection(func(b *BudgetRecord) *string { return &b.ID }),
		actuals: store.NewCollection(func(a *ActualRecord) *string { return &a.ID }),
		now:     time.Now,
	}
}

// Seed loads records without permission checks. It is used at start-up.
func (l *Ledger) Seed(plans []BudgetRecord, actuals []ActualRecord) {
	for _, p := range plans {
		l.plans.Insert(p)
	}
	for _, a := range actuals {
		l.actuals.Insert(a)
	}
}

// Plans returns the budget plans visible to role that pass filter.
func (l *Ledger) Plans(role access.Role, filter Filter) []BudgetRecord {
	visible := access.FilterByRole(role, l.plans.All())
	out := visible[:0]
	for _, p := range visible {
		if filter.MatchPlan(p) {
			out = append(out, p)
		}
	}
	return out
}

// Actuals returns the actuals visible to role that pass filter.
func (l *Ledger) Actuals(role access.Role, filter Filter) []ActualRecord {
	visible := access.FilterByRole(role, l.actuals.All())
	out := visible[:0]
	for _, a := range visible {
		if filter.MatchActual(a) {
			out = append(out, a)
		}
	}
	return out
}

// Plan returns one budget plan.
func (l *Ledger) Plan(role access.Role, id string) (BudgetRecord, error) {
	p, err := l.plans.Get(id)
	if err != nil {
		return BudgetRecord{}, err
	}
	if !access.CanSeeDivision(role, p.Division) {
		return BudgetRecord{}, fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	return p, nil
}

func checkWrite(role access.Role, division string) error {
	if !access.CanInput(role) {
		return fmt.Errorf("%w: %s is read-only", access.ErrForbidden, role)
	}
	if !access.CanSeeDivision(role, division) {
		return fmt.Errorf("%w: %s cannot change %s records", access.ErrForbidden, role, division)
	}
	return nil
}

func (l *Ledger) today() string {
	return l.now().Format(constants.DateLayout)
}

// AddPlan stores a new budget plan on behalf of role.
func (l *Ledger) AddPlan(role access.Role, rec BudgetRecord) (BudgetRecord, error) {
	if err := rec.Validate(); err != nil {
		return BudgetRecord{}, err
	}
	if err := checkWrite(role, rec.Division); err != nil {
		return BudgetRecord{}, err
	}
	rec.ID = ""
	if rec.UploadedBy == "" {
		rec.UploadedBy = role.String()
	}
	if rec.UploadedDate == "" {
		rec.UploadedDate = l.today()
	}
	stored := l.plans.Insert(rec)
	l.logger.Info("budget plan added",
		zap.String("op", "budget.AddPlan"),
		zap.String("id", stored.ID),
		zap.String("division", stored.Division),
		zap.String("activity", stored.Activity),
		zap.Float64("total", stored.Total()),
	)
	return stored, nil
}

// RemovePlan deletes a budget plan on behalf of role.
func (l *Ledger) RemovePlan(role access.Role, id string) error {
	p, err := l.Plan(role, id)
	if err != nil {
		return err
	}
	if err := checkWrite(role, p.Division); err != nil {
		return err
	}
	return l.plans.Delete(id)
}

// RecordActual stores an actual on behalf of role. An actual for a month
// that already has one for the same year, division and activity replaces
// it and keeps its identifier; replaced reports that case.
func (l *Ledger) RecordActual(role access.Role, rec ActualRecord) (stored ActualRecord, replaced bool, err error) {
	if err := rec.Validate(); err != nil {
		return ActualRecord{}, false, err
	}
	if err := checkWrite(role, rec.Division); err != nil {
		return ActualRecord{}, false, err
	}
	rec.ID = ""
	if rec.Source == "" {
		rec.Source = SourceManual
	}
	if rec.InputBy == "" {
		rec.InputBy = role.String()
	}
	if rec.InputDate == "" {
		rec.InputDate = l.today()
	}

	stored, replaced = l.actuals.Upsert(rec.sameSlot, rec)
	l.logger.Info("actual recorded",
		zap.String("op", "budget.RecordActual"),
		zap.String("id", stored.ID),
		zap.String("division", stored.Division),
		zap.String("activity", stored.Activity),
		zap.String("month", stored.Month.Short()),
		zap.Bool("replaced", replaced),
	)
	return stored, replaced, nil
}

// RemoveActual deletes an actual on behalf of role.
func (l *Ledger) RemoveActual(role access.Role, id string) error {
	a, err := l.actuals.Get(id)
	if err != nil {
		return err
	}
	if !access.CanSeeDivision(role, a.Division) {
		return fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	if err := checkWrite(role, a.Division); err != nil {
		return err
	}
	return l.actuals.Delete(id)
}

// Years returns the distinct plan and actual years, ascending.
func (l *Ledger) Years() []int {
	seen := map[int]bool{}
	for _, p := range l.plans.All() {
		seen[p.Year] = true
	}
	for _, a := range l.actuals.All() {
		seen[a.Year] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Divisions returns the divisions that have plans or actuals and are
// visible to role, in first-seen order.
func (l *Ledger) Divisions(role access.Role) []string {
	var names []string
	seen := map[string]bool{}
	add := func(d string) {
		if !seen[d] {
			seen[d] = true
			names = append(names, d)
		}
	}
	for _, p := range l.plans.All() {
		add(p.Division)
	}
	for _, a := range l.actuals.All() {
		add(a.Division)
	}
	return access.VisibleDivisions(role, names)
}

// Activities returns the planned activities visible to role that pass
// filter, in first-seen order.
func (l *Ledger) Activities(role access.Role, filter Filter) []string {
	filter.Activity = ""
	var names []string
	seen := map[string]bool{}
	for _, p := range l.Plans(role, filter) {
		if !seen[p.Activity] {
			seen[p.Activity] = true
			names = append(names, p.Activity)
		}
	}
	return names
}

// UploadKind names which template an upload was made from.
type UploadKind string

// Upload kinds.
const (
	UploadBudget UploadKind = "budget"
	UploadActual UploadKind = "actual"
)

// Upload acknowledges a received file. The content is never parsed.
type Upload struct {
	ID         string     `json:"id"`
	Kind       UploadKind `json:"kind"`
	FileName   string     `json:"fileName"`
	Size       int64      `json:"size"`
	ReceivedBy string     `json:"receivedBy"`
	ReceivedAt string     `json:"receivedAt"`
}

// AcknowledgeUpload records receipt of an uploaded template on behalf of role.
func (l *Ledger) AcknowledgeUpload(role access.Role, kind UploadKind, fileName string, size int64) (Upload, error) {
	if !access.CanInput(role) {
		return Upload{}, fmt.Errorf("%w: %s cannot upload", access.ErrForbidden, role)
	}
	if fileName == "" {
		return Upload{}, validation.Failf("Please select a file to upload")
	}
	up := Upload{
		ID:         store.NewID(),
		Kind:       kind,
		FileName:   fileName,
		Size:       size,
		ReceivedBy: role.String(),
		ReceivedAt: l.today(),
	}
	l.logger.Info("upload received",
		zap.String("op", "budget.AcknowledgeUpload"),
		zap.String("kind", string(kind)),
		zap.String("file", fileName),
		zap.Int64("size", size),
		zap.String("role", role.String()),
	)
	return up, nil
}

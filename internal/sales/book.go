package sales

import (
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/store"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"go.uber.org/zap"
)

// ProductInfo is the master data of a product used to fill in sales lines.
type ProductInfo struct {
	SKU       string
	Name      string
	Category  string
	BrandCode string
	Price     float64
}

// Catalog resolves brands and products from master data.
type Catalog interface {
	BrandName(code string) (string, bool)
	Product(sku string) (ProductInfo, bool)
}

// Book keeps the sales targets, actual sales and campaigns in memory.
type Book struct {
	logger    *zap.Logger
	catalog   Catalog
	targets   *store.Collection[TargetSales]
	actuals   *store.Collection[ActualSales]
	campaigns *store.Collection[Campaign]
	now       func() time.Time
}

// NewBook returns an empty book. catalog may be nil, in which case brand
// and product details must be supplied by the caller.
func NewBook(logger *zap.Logger, catalog Catalog) *Book {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Book{
		logger:    logger,
		catalog:   catalog,
		targets:   store.NewCollection(func(t *TargetSales) *string { return &t.ID }),
		actuals:   store.NewCollection(func(a *ActualSales) *string { return &a.ID }),
		campaigns: store.NewCollection(func(c *Campaign) *string { return &c.ID }),
		now:       time.Now,
	}
}

// Seed loads records without permission checks. It is used at start-up.
func (b *Book) Seed(targets []TargetSales, actuals []ActualSales, campaigns []Campaign) {
	for _, t := range targets {
		b.targets.Insert(t)
	}
	for _, a := range actuals {
		b.actuals.Insert(a)
	}
	for _, c := range campaigns {
		b.campaigns.Insert(c)
	}
}

// LatestYear returns the most recent year holding a target or actual sale,
// or 0 when the book is empty.
func (b *Book) LatestYear() int {
	latest := 0
	for _, t := range b.targets.All() {
		if t.Year > latest {
			latest = t.Year
		}
	}
	for _, a := range b.actuals.All() {
		if a.Year > latest {
			latest = a.Year
		}
	}
	return latest
}

func (b *Book) today() string {
	return b.now().Format(constants.DateLayout)
}

func checkWrite(role access.Role, page access.Page) error {
	if !access.CanInput(role) || !access.CanAccess(role, page) {
		return fmt.Errorf("%w: %s cannot change %s", access.ErrForbidden, role, page)
	}
	return nil
}

func checkRead(role access.Role, id string) error {
	if !access.CanSeeDivision(role, owner()) {
		return fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	return nil
}

func (b *Book) brandName(code, given string) string {
	if given != "" || b.catalog == nil {
		return given
	}
	if name, ok := b.catalog.BrandName(code); ok {
		return name
	}
	return given
}

// Targets returns the sales targets visible to role that pass filter.
func (b *Book) Targets(role access.Role, filter Filter) []TargetSales {
	visible := access.FilterByRole(role, b.targets.All())
	out := visible[:0]
	for _, t := range visible {
		if filter.Match(t.Key, t.Brand) {
			out = append(out, t)
		}
	}
	return out
}

// Target returns one sales target.
func (b *Book) Target(role access.Role, id string) (TargetSales, error) {
	if err := checkRead(role, id); err != nil {
		return TargetSales{}, err
	}
	return b.targets.Get(id)
}

// TargetFor returns the target stored for key, if any.
func (b *Book) TargetFor(key Key) (TargetSales, bool) {
	return b.targets.Find(func(t TargetSales) bool { return t.Key == key })
}

// CreateTarget stores a new sales target on behalf of role. Product
// details missing from the lines are completed from the catalog before
// the derived amounts are calculated.
func (b *Book) CreateTarget(role access.Role, t TargetSales) (TargetSales, error) {
	if err := checkWrite(role, access.PageTargetSales); err != nil {
		return TargetSales{}, err
	}
	t.Brand = b.brandName(t.BrandCode, t.Brand)
	for i := range t.Lines {
		b.completeLine(&t.Lines[i])
	}
	t.Recalculate()
	if err := t.Validate(); err != nil {
		return TargetSales{}, err
	}
	if _, exists := b.TargetFor(t.Key); exists {
		return TargetSales{}, validation.Failf("A target for %s already exists", t.Key)
	}
	t.ID = ""
	if t.CreatedBy == "" {
		t.CreatedBy = role.String()
	}
	if t.CreatedDate == "" {
		t.CreatedDate = b.today()
	}
	stored := b.targets.Insert(t)
	b.logger.Info("sales target created",
		zap.String("op", "sales.CreateTarget"),
		zap.String("id", stored.ID),
		zap.String("key", stored.Key.String()),
		zap.Float64("revenue", stored.TotalRevenue),
	)
	return stored, nil
}

func (b *Book) completeLine(l *TargetLine) {
	if b.catalog == nil {
		return
	}
	p, ok := b.catalog.Product(l.SKU)
	if !ok {
		return
	}
	if l.ProductName == "" {
		l.ProductName = p.Name
	}
	if l.Category == "" {
		l.Category = p.Category
	}
	if l.Price == 0 {
		l.Price = p.Price
	}
}

// DeleteTarget removes a sales target on behalf of role.
func (b *Book) DeleteTarget(role access.Role, id string) error {
	if err := checkWrite(role, access.PageTargetSales); err != nil {
		return err
	}
	return b.targets.Delete(id)
}

// Actuals returns the actual sales visible to role that pass filter.
func (b *Book) Actuals(role access.Role, filter Filter) []ActualSales {
	visible := access.FilterByRole(role, b.actuals.All())
	out := visible[:0]
	for _, a := range visible {
		if filter.Match(a.Key, a.Brand) {
			out = append(out, a)
		}
	}
	return out
}

// Actual returns one actual sales record.
func (b *Book) Actual(role access.Role, id string) (ActualSales, error) {
	if err := checkRead(role, id); err != nil {
		return ActualSales{}, err
	}
	return b.actuals.Get(id)
}

// Evaluate compares a with the target stored for its key.
func (b *Book) Evaluate(a ActualSales) Report {
	if t, ok := b.TargetFor(a.Key); ok {
		return Evaluate(a, &t)
	}
	return Evaluate(a, nil)
}

// Report returns one actual sales record compared with its target.
func (b *Book) Report(role access.Role, id string) (Report, error) {
	a, err := b.Actual(role, id)
	if err != nil {
		return Report{}, err
	}
	return b.Evaluate(a), nil
}

// Reports returns every visible actual sales record that passes filter
// compared with its target.
func (b *Book) Reports(role access.Role, filter Filter) []Report {
	actuals := b.Actuals(role, filter)
	out := make([]Report, 0, len(actuals))
	for _, a := range actuals {
		out = append(out, b.Evaluate(a))
	}
	return out
}

// CreateActual stores new actual sales on behalf of role.
func (b *Book) CreateActual(role access.Role, a ActualSales) (Report, error) {
	if err := checkWrite(role, access.PageActualSales); err != nil {
		return Report{}, err
	}
	a.Brand = b.brandName(a.BrandCode, a.Brand)
	if a.DataSource == "" {
		a.DataSource = SourceManualInput
	}
	if err := a.Validate(); err != nil {
		return Report{}, err
	}
	a.ID = ""
	if a.CreatedBy == "" {
		a.CreatedBy = role.String()
	}
	if a.CreatedDate == "" {
		a.CreatedDate = b.today()
	}
	stored := b.actuals.Insert(a)
	report := b.Evaluate(stored)
	b.logger.Info("actual sales created",
		zap.String("op", "sales.CreateActual"),
		zap.String("id", stored.ID),
		zap.String("key", stored.Key.String()),
		zap.Float64("revenue", report.TotalRevenue),
		zap.String("status", string(report.Status)),
	)
	return report, nil
}

// DeleteActual removes actual sales on behalf of role.
func (b *Book) DeleteActual(role access.Role, id string) error {
	if err := checkWrite(role, access.PageActualSales); err != nil {
		return err
	}
	return b.actuals.Delete(id)
}

// Campaigns returns the campaigns visible to role that pass filter.
func (b *Book) Campaigns(role access.Role, filter Filter) []Campaign {
	visible := access.FilterByRole(role, b.campaigns.All())
	out := visible[:0]
	for _, c := range visible {
		if filter.Match(c.Key, c.Brand) {
			out = append(out, c)
		}
	}
	return out
}

// Campaign returns one campaign.
func (b *Book) Campaign(role access.Role, id string) (Campaign, error) {
	if err := checkRead(role, id); err != nil {
		return Campaign{}, err
	}
	return b.campaigns.Get(id)
}

// CreateCampaign stores a new campaign on behalf of role. Estimates are
// derived from the budget, targets and product mappings.
func (b *Book) CreateCampaign(role access.Role, c Campaign) (Campaign, error) {
	if err := checkWrite(role, access.PageTargetAds); err != nil {
		return Campaign{}, err
	}
	c.Brand = b.brandName(c.BrandCode, c.Brand)
	if b.catalog != nil {
		for i := range c.Mappings {
			m := &c.Mappings[i]
			if p, ok := b.catalog.Product(m.SKU); ok {
				if m.ProductName == "" {
					m.ProductName = p.Name
				}
				if m.Category == "" {
					m.Category = p.Category
				}
			}
		}
	}
	if err := c.Validate(); err != nil {
		return Campaign{}, err
	}
	c.Recalculate()
	c.ID = ""
	if c.Status == "" {
		c.Status = StatusDraft
	}
	if c.CreatedBy == "" {
		c.CreatedBy = role.String()
	}
	if c.CreatedDate == "" {
		c.CreatedDate = b.today()
	}
	stored := b.campaigns.Insert(c)
	b.logger.Info("campaign created",
		zap.String("op", "sales.CreateCampaign"),
		zap.String("id", stored.ID),
		zap.String("name", stored.Name),
		zap.String("status", string(stored.Status)),
		zap.Float64("expectedRevenue", stored.ExpectedRevenue),
	)
	return stored, nil
}

// ErrAlreadySubmitted is returned when a submitted campaign is submitted again.
var ErrAlreadySubmitted = errors.New("campaign already submitted")

// SubmitCampaign moves a draft campaign to Submitted.
func (b *Book) SubmitCampaign(role access.Role, id string) (Campaign, error) {
	if err := checkWrite(role, access.PageTargetAds); err != nil {
		return Campaign{}, err
	}
	return b.campaigns.Update(id, func(c *Campaign) error {
		if c.Status == StatusSubmitted {
			return fmt.Errorf("%w: %s", ErrAlreadySubmitted, c.Name)
		}
		c.Status = StatusSubmitted
		return nil
	})
}

// DeleteCampaign removes a campaign on behalf of role.
func (b *Book) DeleteCampaign(role access.Role, id string) error {
	if err := checkWrite(role, access.PageTargetAds); err != nil {
		return err
	}
	return b.campaigns.Delete(id)
}

// ImportKind names which sales page a file was imported into.
type ImportKind string

// Import kinds.
const (
	ImportTargets   ImportKind = "targets"
	ImportActuals   ImportKind = "actuals"
	ImportCampaigns ImportKind = "campaigns"
)

var importPages = map[ImportKind]access.Page{
	ImportTargets:   access.PageTargetSales,
	ImportActuals:   access.PageActualSales,
	ImportCampaigns: access.PageTargetAds,
}

// ParseImportKind converts a path segment into an ImportKind.
func ParseImportKind(s string) (ImportKind, error) {
	k := ImportKind(s)
	if _, ok := importPages[k]; !ok {
		return "", validation.Failf("unknown import kind %q", s)
	}
	return k, nil
}

// Import acknowledges a received file. The content is never parsed.
type Import struct {
	ID         string     `json:"id"`
	Kind       ImportKind `json:"kind"`
	FileName   string     `json:"fileName"`
	Size       int64      `json:"size"`
	ReceivedBy string     `json:"receivedBy"`
	ReceivedAt string     `json:"receivedAt"`
}

// AcknowledgeImport records receipt of an imported file on behalf of role.
func (b *Book) AcknowledgeImport(role access.Role, kind ImportKind, fileName string, size int64) (Import, error) {
	page, ok := importPages[kind]
	if !ok {
		return Import{}, validation.Failf("unknown import kind %q", string(kind))
	}
	if err := checkWrite(role, page); err != nil {
		return Import{}, err
	}
	if fileName == "" {
		return Import{}, validation.Failf("Please select a file to import")
	}
	imp := Import{
		ID:         store.NewID(),
		Kind:       kind,
		FileName:   fileName,
		Size:       size,
		ReceivedBy: role.String(),
		ReceivedAt: b.today(),
	}
	b.logger.Info("import received",
		zap.String("op", "sales.AcknowledgeImport"),
		zap.String("kind", string(kind)),
		zap.String("file", fileName),
		zap.Int64("size", size),
		zap.String("role", role.String()),
	)
	return imp, nil
}

package budget

import (
	"errors"
	"testing"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/metrics"
	"github.com/iwvelando/marui-portal/internal/store"
	"github.com/iwvelando/marui-portal/pkg/datetime"
	"github.com/iwvelando/marui-portal/pkg/validation"
)

func awsPlan() BudgetRecord {
	return BudgetRecord{
		Year:        2024,
		Division:    "IT",
		Activity:    "AWS Cloud Services",
		Description: "Cloud infrastructure monthly",
		Months: metrics.Monthly{
			8500000, 8500000, 8500000,
			9000000, 9000000, 9000000,
			9500000, 9500000, 9500000,
			10000000, 10000000, 10000000,
		},
		UploadedBy:   "John Doe (Finance)",
		UploadedDate: "2024-01-15",
	}
}

func seededLedger() *Ledger {
	l := NewLedger(nil)
	l.Seed(
		[]BudgetRecord{
			awsPlan(),
			{Year: 2024, Division: "Marketing", Activity: "Google Ads Campaign", Months: metrics.Monthly{15000000, 15000000}},
			{Year: 2024, Division: "Sales Komersial", Activity: "CRM System", Months: metrics.Monthly{25000000}},
			{Year: 2025, Division: "IT", Activity: "HRIS", Months: metrics.Monthly{4000000}},
		},
		[]ActualRecord{
			{Year: 2024, Division: "IT", Activity: "AWS Cloud Services", Month: datetime.January, Amount: 8000000, Source: SourceUpload},
			{Year: 2024, Division: "Sales Komersial", Activity: "CRM System", Month: datetime.January, Amount: 25000000, Source: SourceUpload},
		},
	)
	return l
}

func TestBudgetRecordQuarterly(t *testing.T) {
	q := awsPlan().Quarterly()
	expected := metrics.Quarterly{Q1: 25500000, Q2: 27000000, Q3: 28500000, Q4: 30000000, Total: 111000000}
	if q != expected {
		t.Errorf("Quarterly() = %+v, expected %+v", q, expected)
	}
	if awsPlan().Total() != 111000000 {
		t.Errorf("Total() = %v", awsPlan().Total())
	}
}

func TestPlansFilter(t *testing.T) {
	l := seededLedger()
	tests := []struct {
		name     string
		role     access.Role
		filter   Filter
		expected int
	}{
		{name: "Admin all", role: access.Admin, filter: Filter{}, expected: 4},
		{name: "Admin 2024", role: access.Admin, filter: Filter{Year: 2024}, expected: 3},
		{name: "Admin division All", role: access.Admin, filter: Filter{Year: 2024, Division: "All"}, expected: 3},
		{name: "Admin Marketing", role: access.Admin, filter: Filter{Division: "Marketing"}, expected: 1},
		{name: "Divisi User sees IT only", role: access.DivisiUser, filter: Filter{}, expected: 2},
		{name: "Divisi User cannot widen scope", role: access.DivisiUser, filter: Filter{Division: "Marketing"}, expected: 0},
		{name: "Sales Komersial", role: access.DivisiSalesKomersial, filter: Filter{Year: 2024}, expected: 1},
		{name: "Activity filter", role: access.Finance, filter: Filter{Activity: "HRIS"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(l.Plans(tt.role, tt.filter)); got != tt.expected {
				t.Errorf("Plans() returned %d records, expected %d", got, tt.expected)
			}
		})
	}
}

func TestAddPlan(t *testing.T) {
	tests := []struct {
		name        string
		role        access.Role
		record      BudgetRecord
		expectErr   error
		expectValid bool
	}{
		{name: "Finance adds", role: access.Finance, record: awsPlan()},
		{name: "Divisi User adds IT", role: access.DivisiUser, record: awsPlan()},
		{
			name:      "Divisi User adds Marketing",
			role:      access.DivisiUser,
			record:    BudgetRecord{Year: 2024, Division: "Marketing", Activity: "x"},
			expectErr: access.ErrForbidden,
		},
		{name: "Top Management read-only", role: access.TopManagement, record: awsPlan(), expectErr: access.ErrForbidden},
		{
			name:        "Missing activity",
			role:        access.Admin,
			record:      BudgetRecord{Year: 2024, Division: "IT"},
			expectValid: true,
		},
		{
			name:        "Negative month",
			role:        access.Admin,
			record:      BudgetRecord{Year: 2024, Division: "IT", Activity: "x", Months: metrics.Monthly{0, -1}},
			expectValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(nil)
			stored, err := l.AddPlan(tt.role, tt.record)
			switch {
			case tt.expectValid:
				if !validation.IsValidationError(err) {
					t.Fatalf("AddPlan() error = %v, expected validation error", err)
				}
			case tt.expectErr != nil:
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("AddPlan() error = %v, expected %v", err, tt.expectErr)
				}
			default:
				if err != nil {
					t.Fatalf("AddPlan() unexpected error = %v", err)
				}
				if stored.ID == "" {
					t.Error("AddPlan() did not assign an ID")
				}
				if len(l.Plans(access.Admin, Filter{})) != 1 {
					t.Error("AddPlan() did not store the plan")
				}
				return
			}
			if len(l.Plans(access.Admin, Filter{})) != 0 {
				t.Error("rejected plan was stored")
			}
		})
	}
}

func TestAddPlanDefaults(t *testing.T) {
	l := NewLedger(nil)
	rec := awsPlan()
	rec.UploadedBy = ""
	rec.UploadedDate = ""
	stored, err := l.AddPlan(access.Finance, rec)
	if err != nil {
		t.Fatalf("AddPlan() error = %v", err)
	}
	if stored.UploadedBy != "Finance" {
		t.Errorf("UploadedBy = %q, expected Finance", stored.UploadedBy)
	}
	if _, err := datetime.ParseDate(stored.UploadedDate); err != nil {
		t.Errorf("UploadedDate %q is not a date: %v", stored.UploadedDate, err)
	}
}

func TestRecordActualReplacesDuplicateMonth(t *testing.T) {
	l := seededLedger()
	before := l.Actuals(access.Admin, Filter{})
	var originalID string
	for _, a := range before {
		if a.Activity == "AWS Cloud Services" {
			originalID = a.ID
		}
	}

	stored, replaced, err := l.RecordActual(access.DivisiUser, ActualRecord{
		Year: 2024, Division: "IT", Activity: "AWS Cloud Services", Month: datetime.January, Amount: 8500000,
	})
	if err != nil {
		t.Fatalf("RecordActual() error = %v", err)
	}
	if !replaced {
		t.Error("expected duplicate month to replace the existing actual")
	}
	if stored.ID != originalID {
		t.Errorf("replaced actual ID = %s, expected %s", stored.ID, originalID)
	}
	if stored.Source != SourceManual {
		t.Errorf("Source = %q, expected Manual", stored.Source)
	}

	after := l.Actuals(access.Admin, Filter{})
	if len(after) != len(before) {
		t.Errorf("actual count changed from %d to %d", len(before), len(after))
	}

	_, replaced, err = l.RecordActual(access.DivisiUser, ActualRecord{
		Year: 2024, Division: "IT", Activity: "AWS Cloud Services", Month: datetime.February, Amount: 8500000,
	})
	if err != nil || replaced {
		t.Errorf("new month: replaced = %v, err = %v", replaced, err)
	}
}

func TestRecordActualRejects(t *testing.T) {
	tests := []struct {
		name      string
		role      access.Role
		record    ActualRecord
		expectErr error
		invalid   bool
	}{
		{
			name:    "missing month",
			role:    access.Admin,
			record:  ActualRecord{Year: 2024, Division: "IT", Activity: "HRIS"},
			invalid: true,
		},
		{
			name:    "negative amount",
			role:    access.Admin,
			record:  ActualRecord{Year: 2024, Division: "IT", Activity: "HRIS", Month: datetime.March, Amount: -5},
			invalid: true,
		},
		{
			name:    "unknown source",
			role:    access.Admin,
			record:  ActualRecord{Year: 2024, Division: "IT", Activity: "HRIS", Month: datetime.March, Source: "Email"},
			invalid: true,
		},
		{
			name:      "top management",
			role:      access.TopManagement,
			record:    ActualRecord{Year: 2024, Division: "IT", Activity: "HRIS", Month: datetime.March},
			expectErr: access.ErrForbidden,
		},
		{
			name:      "sales komersial into IT",
			role:      access.DivisiSalesKomersial,
			record:    ActualRecord{Year: 2024, Division: "IT", Activity: "HRIS", Month: datetime.March},
			expectErr: access.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewLedger(nil).RecordActual(tt.role, tt.record)
			if tt.invalid {
				if !validation.IsValidationError(err) {
					t.Errorf("RecordActual() error = %v, expected validation error", err)
				}
				return
			}
			if !errors.Is(err, tt.expectErr) {
				t.Errorf("RecordActual() error = %v, expected %v", err, tt.expectErr)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	l := seededLedger()
	var crmPlan, crmActual string
	for _, p := range l.Plans(access.Admin, Filter{}) {
		if p.Activity == "CRM System" {
			crmPlan = p.ID
		}
	}
	for _, a := range l.Actuals(access.Admin, Filter{}) {
		if a.Activity == "CRM System" {
			crmActual = a.ID
		}
	}

	if err := l.RemovePlan(access.DivisiUser, crmPlan); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("RemovePlan() by other division error = %v, expected ErrNotFound", err)
	}
	if err := l.RemovePlan(access.TopManagement, crmPlan); !errors.Is(err, access.ErrForbidden) {
		t.Errorf("RemovePlan() by Top Management error = %v, expected ErrForbidden", err)
	}
	if err := l.RemovePlan(access.DivisiSalesKomersial, crmPlan); err != nil {
		t.Errorf("RemovePlan() error = %v", err)
	}
	if err := l.RemoveActual(access.DivisiUser, crmActual); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("RemoveActual() by other division error = %v, expected ErrNotFound", err)
	}
	if err := l.RemoveActual(access.Admin, crmActual); err != nil {
		t.Errorf("RemoveActual() error = %v", err)
	}
	if err := l.RemoveActual(access.Admin, crmActual); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second RemoveActual() error = %v, expected ErrNotFound", err)
	}
}

func TestLookups(t *testing.T) {
	l := seededLedger()
	if got := l.Years(); len(got) != 2 || got[0] != 2024 || got[1] != 2025 {
		t.Errorf("Years() = %v", got)
	}
	if got := l.Divisions(access.Admin); len(got) != 3 {
		t.Errorf("Divisions(Admin) = %v", got)
	}
	if got := l.Divisions(access.DivisiUser); len(got) != 1 || got[0] != "IT" {
		t.Errorf("Divisions(DivisiUser) = %v", got)
	}
	if got := l.Activities(access.Admin, Filter{Year: 2024, Activity: "ignored"}); len(got) != 3 {
		t.Errorf("Activities() = %v", got)
	}
}

func TestAcknowledgeUpload(t *testing.T) {
	l := NewLedger(nil)
	up, err := l.AcknowledgeUpload(access.Finance, UploadActual, "actuals.csv", 2048)
	if err != nil {
		t.Fatalf("AcknowledgeUpload() error = %v", err)
	}
	if up.ID == "" || up.FileName != "actuals.csv" || up.Size != 2048 || up.ReceivedBy != "Finance" {
		t.Errorf("AcknowledgeUpload() = %+v", up)
	}
	if len(l.Actuals(access.Admin, Filter{})) != 0 {
		t.Error("upload must not create actuals")
	}
	if _, err := l.AcknowledgeUpload(access.TopManagement, UploadBudget, "b.xlsx", 1); !errors.Is(err, access.ErrForbidden) {
		t.Errorf("Top Management upload error = %v, expected ErrForbidden", err)
	}
	if _, err := l.AcknowledgeUpload(access.Admin, UploadBudget, "", 1); !validation.IsValidationError(err) {
		t.Errorf("empty file name error = %v, expected validation error", err)
	}
}

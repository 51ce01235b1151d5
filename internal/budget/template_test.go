package budget

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestBudgetTemplateHeader(t *testing.T) {
	expected := "Year,Division,Activity,Description,Jan,Feb,Mar,Apr,May,Jun,Jul,Aug,Sep,Oct,Nov,Dec"
	if got := strings.Join(BudgetTemplateHeader(), ","); got != expected {
		t.Errorf("BudgetTemplateHeader() = %s", got)
	}
}

func TestWriteTemplateCSV(t *testing.T) {
	tests := []struct {
		kind     TemplateKind
		header   string
		examples int
		preamble bool
	}{
		{kind: TemplateBudget, header: "Year,Division,Activity,Description,Jan", examples: 4},
		{kind: TemplateActual, header: "Year,Division,Activity,Month,Actual Amount,Description", examples: 3, preamble: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteTemplate(&buf, tt.kind, "csv"); err != nil {
				t.Fatalf("WriteTemplate() error = %v", err)
			}
			r := csv.NewReader(&buf)
			r.FieldsPerRecord = -1
			records, err := r.ReadAll()
			if err != nil {
				t.Fatalf("template is not valid CSV: %v", err)
			}

			headerLine := -1
			for i, rec := range records {
				if len(rec) > 1 && rec[0] == "Year" {
					headerLine = i
					break
				}
			}
			if headerLine < 0 {
				t.Fatal("template has no header row")
			}
			if got := strings.Join(records[headerLine], ","); !strings.HasPrefix(got, tt.header) {
				t.Errorf("header row = %s, expected prefix %s", got, tt.header)
			}
			if tt.preamble != (headerLine > 0) {
				t.Errorf("header found at line %d, preamble expected = %v", headerLine, tt.preamble)
			}
			if got := len(records) - headerLine - 1; got != tt.examples {
				t.Errorf("template has %d example rows, expected %d", got, tt.examples)
			}
		})
	}
}

func TestActualTemplateInstructions(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTemplate(&buf, TemplateActual, "csv"); err != nil {
		t.Fatalf("WriteTemplate() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Duplicate Month for same activity will replace existing data") {
		t.Error("actual template is missing the duplicate month instruction")
	}
}

func TestWriteTemplateXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTemplate(&buf, TemplateBudget, "xlsx"); err != nil {
		t.Fatalf("WriteTemplate() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Budget")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("workbook has %d rows, expected 5", len(rows))
	}
	if rows[0][0] != "Year" || rows[0][15] != "Dec" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][4] != "50000000" {
		t.Errorf("Jan example = %q", rows[1][4])
	}
}

func TestWriteTemplateRejectsFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTemplate(&buf, TemplateBudget, "xls"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseTemplateKind(t *testing.T) {
	if k, err := ParseTemplateKind("actual"); err != nil || k != TemplateActual {
		t.Errorf("ParseTemplateKind(actual) = %v, %v", k, err)
	}
	if _, err := ParseTemplateKind("sales"); err == nil {
		t.Error("expected error for unknown kind")
	}
	if got := TemplateFileName(TemplateActual, "xlsx"); got != "actual_budget_template.xlsx" {
		t.Errorf("TemplateFileName() = %s", got)
	}
}

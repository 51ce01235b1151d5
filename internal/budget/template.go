package budget

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/datetime"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"github.com/xuri/excelize/v2"
)

// TemplateKind selects which upload template to produce.
type TemplateKind string

// Template kinds.
const (
	TemplateBudget TemplateKind = "budget"
	TemplateActual TemplateKind = "actual"
)

// ParseTemplateKind validates a template kind name.
func ParseTemplateKind(s string) (TemplateKind, error) {
	switch TemplateKind(s) {
	case TemplateBudget, TemplateActual:
		return TemplateKind(s), nil
	}
	return "", fmt.Errorf("expected template kind of %s or %s, got %s", TemplateBudget, TemplateActual, s)
}

// BudgetTemplateHeader is the fixed header row of the budget template.
func BudgetTemplateHeader() []string {
	header := []string{"Year", "Division", "Activity", "Description"}
	for _, m := range datetime.Months {
		header = append(header, m.Short())
	}
	return header
}

// ActualTemplateHeader is the fixed header row of the actual budget template.
var ActualTemplateHeader = []string{"Year", "Division", "Activity", "Month", "Actual Amount", "Description"}

// ActualTemplateInstructions precede the header row of the actual template.
var ActualTemplateInstructions = []string{
	"INSTRUCTIONS:",
	"- Do not change column names or order",
	"- Activity must match Budget data exactly",
	"- Month must be: Jan, Feb, Mar, Apr, May, Jun, Jul, Aug, Sep, Oct, Nov, Dec",
	"- One row = one actual transaction",
	"- Duplicate Month for same activity will replace existing data",
}

func budgetExampleRows() [][]string {
	filled := []string{"2024", "IT", "Software Development", "Budget for software development projects",
		"50000000", "52000000", "48000000", "55000000", "53000000", "51000000",
		"60000000", "58000000", "62000000", "65000000", "63000000", "70000000"}
	blank := func(division, activity, description string) []string {
		row := []string{"2024", division, activity, description}
		for range datetime.Months {
			row = append(row, "")
		}
		return row
	}
	return [][]string{
		filled,
		blank("IT", "Infrastructure Maintenance", "Budget for IT infrastructure and maintenance"),
		blank("Marketing", "Digital Marketing Campaigns", "Budget for online marketing activities"),
		blank("HR", "Employee Training", "Budget for training and development programs"),
	}
}

func actualExampleRows() [][]string {
	return [][]string{
		{"2024", "IT", "Digital Ocean", "Jan", "1450000", "Server hosting January"},
		{"2024", "IT", "CloudLinux Imunify360", "Jan", "230000", "License renewal Q1"},
		{"2024", "Marketing", "Google Ads Campaign", "Feb", "", ""},
	}
}

// templateRows returns every row of a template, instructions included.
func templateRows(kind TemplateKind) [][]string {
	switch kind {
	case TemplateActual:
		rows := make([][]string, 0, len(ActualTemplateInstructions)+5)
		for _, line := range ActualTemplateInstructions {
			rows = append(rows, []string{line})
		}
		rows = append(rows, []string{""}, ActualTemplateHeader)
		return append(rows, actualExampleRows()...)
	default:
		return append([][]string{BudgetTemplateHeader()}, budgetExampleRows()...)
	}
}

// TemplateFileName returns the download name of a template.
func TemplateFileName(kind TemplateKind, format string) string {
	base := "budget_template"
	if kind == TemplateActual {
		base = "actual_budget_template"
	}
	return base + "." + format
}

// WriteTemplate writes a template of the given kind in format (csv or xlsx).
func WriteTemplate(w io.Writer, kind TemplateKind, format string) error {
	if err := validation.ValidateTemplateFormat(format); err != nil {
		return err
	}
	if format == constants.TemplateFormatXLSX {
		return writeTemplateXLSX(w, kind)
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(templateRows(kind)); err != nil {
		return fmt.Errorf("writing %s template: %w", kind, err)
	}
	return nil
}

func writeTemplateXLSX(w io.Writer, kind TemplateKind) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	sheet := "Budget"
	if kind == TemplateActual {
		sheet = "Actual Budget"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, row := range templateRows(kind) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = cellValue(v)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
		if len(row) > 1 && row[0] == "Year" {
			last, err := excelize.CoordinatesToCellName(len(row), i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, last, bold); err != nil {
				return fmt.Errorf("styling header: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// cellValue stores whole numbers as numbers so spreadsheets can sum them.
func cellValue(s string) interface{} {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}

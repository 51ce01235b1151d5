// Package fixtures provides the demonstration data the portal starts with.
package fixtures

import (
	"github.com/iwvelando/marui-portal/internal/budget"
	"github.com/iwvelando/marui-portal/internal/metrics"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/datetime"
)

// Year is the budget year covered by the budget fixtures.
const Year = 2024

func every(amount float64) metrics.Monthly {
	var m metrics.Monthly
	for i := range m {
		m[i] = amount
	}
	return m
}

func plan(division, activity, description string, months metrics.Monthly, by, date string) budget.BudgetRecord {
	return budget.BudgetRecord{
		Year:         Year,
		Division:     division,
		Activity:     activity,
		Description:  description,
		Months:       months,
		UploadedBy:   by,
		UploadedDate: date,
	}
}

// BudgetPlans returns the planned budgets.
func BudgetPlans() []budget.BudgetRecord {
	const (
		it        = constants.DivisionIT
		marketing = "Marketing"
		hr        = "HR"
		finance   = "Finance"
		ops       = "Operations"
		sales     = constants.DivisionSalesKomersial
	)
	return []budget.BudgetRecord{
		plan(it, "CloudLinux Imunify360", "Invoice akhir bulan", metrics.Monthly{230000}, "John Doe (Finance)", "2024-01-15"),
		plan(it, "Digital Ocean", "Server Prod", every(1500000), "John Doe (Finance)", "2024-01-15"),
		plan(it, "HRIS", "Exp Jan 2026", metrics.Monthly{4000000}, "Admin User", "2024-01-17"),
		plan(it, "AWS Cloud Services", "Cloud infrastructure monthly", metrics.Monthly{
			8500000, 8500000, 8500000,
			9000000, 9000000, 9000000,
			9500000, 9500000, 9500000,
			10000000, 10000000, 10000000,
		}, "John Doe (Finance)", "2024-01-15"),
		plan(marketing, "Google Ads Campaign", "Digital marketing Q1-Q2", metrics.Monthly{
			15000000, 15000000, 20000000, 18000000, 18000000, 22000000,
		}, "Jane Smith (Marketing)", "2024-01-16"),
		plan(marketing, "Social Media Management", "Monthly retainer fee", metrics.Monthly{
			5000000, 5000000, 5000000, 5000000, 5000000, 5000000,
			6000000, 6000000, 6000000, 6000000, 6000000, 6000000,
		}, "Jane Smith (Marketing)", "2024-01-16"),
		plan(hr, "Employee Training Program", "Quarterly training sessions", metrics.Monthly{
			0, 0, 25000000, 0, 0, 25000000, 0, 0, 25000000, 0, 0, 25000000,
		}, "HR Manager", "2024-01-18"),
		plan(hr, "Recruitment Platform", "Annual subscription Jobstreet", metrics.Monthly{
			12000000, 0, 0, 0, 0, 0, 12000000,
		}, "HR Manager", "2024-01-18"),
		plan(finance, "Accounting Software", "Accurate license renewal", metrics.Monthly{3500000}, "Finance Head", "2024-01-20"),
		plan(ops, "Office Supplies", "Monthly office supplies", metrics.Monthly{
			2000000, 2000000, 2500000, 2000000, 2000000, 2500000,
			2000000, 2000000, 2500000, 2000000, 2000000, 3000000,
		}, "Operations Manager", "2024-01-19"),
		plan(sales, "Sales Team Incentive", "Quarterly sales team bonus", metrics.Monthly{
			0, 0, 50000000, 0, 0, 55000000, 0, 0, 60000000, 0, 0, 65000000,
		}, "Sales Manager", "2024-01-21"),
		plan(sales, "CRM System", "Salesforce annual subscription", metrics.Monthly{
			25000000, 0, 0, 0, 0, 0, 25000000,
		}, "Sales Manager", "2024-01-21"),
	}
}

func actual(division, activity string, month datetime.Month, amount float64, description, by, date string, source budget.Source) budget.ActualRecord {
	return budget.ActualRecord{
		Year:        Year,
		Division:    division,
		Activity:    activity,
		Month:       month,
		Amount:      amount,
		Description: description,
		InputBy:     by,
		InputDate:   date,
		Source:      source,
	}
}

// BudgetActuals returns the recorded actual spending.
func BudgetActuals() []budget.ActualRecord {
	const it = constants.DivisionIT
	up, manual := budget.SourceUpload, budget.SourceManual
	return []budget.ActualRecord{
		actual(it, "Digital Ocean", datetime.January, 1450000, "Server hosting January", "John Doe (Finance)", "2024-02-05", up),
		actual(it, "Digital Ocean", datetime.February, 1500000, "Server hosting February", "John Doe (Finance)", "2024-03-05", up),
		actual(it, "CloudLinux Imunify360", datetime.January, 230000, "License renewal Q1", "Admin User", "2024-02-10", manual),
		actual(it, "HRIS", datetime.January, 4200000, "System renewal and maintenance", "IT Manager", "2024-02-15", manual),
		actual("Marketing", "Google Ads Campaign", datetime.January, 14500000, "Q1 campaign - brand awareness", "Jane Smith (Marketing)", "2024-02-08", up),
		actual("Marketing", "Social Media Management", datetime.January, 5000000, "Monthly retainer - January", "Jane Smith (Marketing)", "2024-02-08", up),
		actual("HR", "Recruitment Platform", datetime.January, 12000000, "Jobstreet annual subscription", "HR Manager", "2024-02-12", manual),
		actual("Operations", "Office Supplies", datetime.January, 2150000, "Monthly office supplies purchase", "Operations Manager", "2024-02-06", up),
		actual(constants.DivisionSalesKomersial, "CRM System", datetime.January, 25000000, "Salesforce annual subscription payment", "Sales Manager", "2024-02-08", up),
	}
}

package fixtures

import (
	"github.com/iwvelando/marui-portal/internal/budget"
	"github.com/iwvelando/marui-portal/internal/masterdata"
	"github.com/iwvelando/marui-portal/internal/sales"
)

// Load seeds every store with the fixtures. Nil stores are skipped.
func Load(ledger *budget.Ledger, book *sales.Book, registry *masterdata.Registry) {
	if ledger != nil {
		ledger.Seed(BudgetPlans(), BudgetActuals())
	}
	if book != nil {
		book.Seed(Targets(), ActualSales(), Campaigns())
	}
	if registry != nil {
		registry.Seed(Divisions(), Users(), Brands(), Products())
	}
}

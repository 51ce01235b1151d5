package main

import (
	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/budget"
	"github.com/spf13/cobra"
)

func newBudgetCmd(flags *rootFlags) *cobra.Command {
	var (
		filter  budget.Filter
		actuals bool
	)

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "List budget plans, or recorded actuals with --actuals",
		Args:  cobra.NoArgs,
		RunE: runWithApp(flags, func(a *app, _ []string) error {
			if actuals {
				if err := a.requirePage(access.PageActualBudget); err != nil {
					return err
				}
				return a.write(budget.ActualTable("Actual Budget", a.ledger.Actuals(a.role(), filter)))
			}
			if err := a.requirePage(access.PageBudgeting); err != nil {
				return err
			}
			return a.write(budget.PlanTable("Budget Plans", a.ledger.Plans(a.role(), filter)))
		}),
	}

	cmd.Flags().IntVar(&filter.Year, "year", 0, "budget year (0 for all)")
	cmd.Flags().StringVar(&filter.Division, "division", "", "division name")
	cmd.Flags().StringVar(&filter.Activity, "activity", "", "activity name")
	cmd.Flags().BoolVar(&actuals, "actuals", false, "list recorded actuals instead of plans")
	return cmd
}

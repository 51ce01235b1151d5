package main

import (
	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/budget"
	"github.com/iwvelando/marui-portal/internal/sales"
	"github.com/spf13/cobra"
)

func newDashboardCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the budget or sales dashboard",
	}

	var (
		budgetYear int
		division   string
	)
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Show the budget dashboard",
		Args:  cobra.NoArgs,
		RunE: runWithApp(flags, func(a *app, _ []string) error {
			if err := a.requirePage(access.PageBudgetDashboard, access.PageDashboard); err != nil {
				return err
			}
			opts := a.budgetOptions()
			opts.Year = budgetYear
			opts.Division = division
			return a.write(budget.DashboardTables(a.ledger.Dashboard(a.role(), opts))...)
		}),
	}
	budgetCmd.Flags().IntVar(&budgetYear, "year", 0, "budget year (0 for the latest)")
	budgetCmd.Flags().StringVar(&division, "division", "", "division name")

	var (
		salesYear int
		brand     string
		channel   string
		period    string
	)
	salesCmd := &cobra.Command{
		Use:   "sales",
		Short: "Show the sales dashboard",
		Args:  cobra.NoArgs,
		RunE: runWithApp(flags, func(a *app, _ []string) error {
			if err := a.requirePage(access.PageSalesDashboard, access.PageDashboard); err != nil {
				return err
			}
			p, err := sales.ParsePeriod(period)
			if err != nil {
				return err
			}
			opts := a.salesOptions()
			opts.Year = salesYear
			opts.BrandCode = brand
			opts.Channel = channel
			opts.Period = p
			return a.write(sales.DashboardTables(a.book.Dashboard(a.role(), opts))...)
		}),
	}
	salesCmd.Flags().IntVar(&salesYear, "year", 0, "sales year (0 for the latest)")
	salesCmd.Flags().StringVar(&brand, "brand", "", "brand code")
	salesCmd.Flags().StringVar(&channel, "channel", "", "sales channel")
	salesCmd.Flags().StringVar(&period, "period", "", "trend period: monthly, quarterly, yearly")

	cmd.AddCommand(budgetCmd, salesCmd)
	return cmd
}

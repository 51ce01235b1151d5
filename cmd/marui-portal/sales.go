package main

import (
	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/sales"
	"github.com/iwvelando/marui-portal/pkg/datetime"
	"github.com/spf13/cobra"
)

type salesFlags struct {
	search  string
	month   string
	year    int
	brand   string
	channel string
}

func (f salesFlags) filter() (sales.Filter, error) {
	filter := sales.Filter{
		Search:    f.search,
		Year:      f.year,
		BrandCode: f.brand,
		Channel:   f.channel,
	}
	if f.month != "" {
		m, err := datetime.ParseMonth(f.month)
		if err != nil {
			return filter, err
		}
		filter.Month = m
	}
	return filter, nil
}

func newSalesCmd(flags *rootFlags) *cobra.Command {
	sf := &salesFlags{}

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "List sales targets, actual sales reports or ads campaigns",
	}
	cmd.PersistentFlags().StringVar(&sf.search, "search", "", "search brand, channel or period")
	cmd.PersistentFlags().StringVar(&sf.month, "month", "", "month name, e.g. January")
	cmd.PersistentFlags().IntVar(&sf.year, "year", 0, "year (0 for all)")
	cmd.PersistentFlags().StringVar(&sf.brand, "brand", "", "brand code, e.g. BRD001")
	cmd.PersistentFlags().StringVar(&sf.channel, "channel", "", "sales channel")

	list := func(use, short string, page access.Page, render func(a *app, f sales.Filter) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: runWithApp(flags, func(a *app, _ []string) error {
				if err := a.requirePage(page); err != nil {
					return err
				}
				f, err := sf.filter()
				if err != nil {
					return err
				}
				return render(a, f)
			}),
		}
	}

	cmd.AddCommand(
		list("targets", "List sales targets", access.PageTargetSales, func(a *app, f sales.Filter) error {
			return a.write(sales.TargetTable("Target Sales", a.book.Targets(a.role(), f)))
		}),
		list("actuals", "List actual sales against their targets", access.PageActualSales, func(a *app, f sales.Filter) error {
			return a.write(sales.ReportTable("Actual Sales", a.book.Reports(a.role(), f)))
		}),
		list("campaigns", "List ads and marketing campaigns", access.PageTargetAds, func(a *app, f sales.Filter) error {
			return a.write(sales.CampaignTable("Target Ads & Marketing", a.book.Campaigns(a.role(), f)))
		}),
	)
	return cmd
}

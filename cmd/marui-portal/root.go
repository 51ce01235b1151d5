package main

import (
	"fmt"
	"io"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/budget"
	"github.com/iwvelando/marui-portal/internal/config"
	"github.com/iwvelando/marui-portal/internal/fixtures"
	"github.com/iwvelando/marui-portal/internal/masterdata"
	"github.com/iwvelando/marui-portal/internal/sales"
	"github.com/iwvelando/marui-portal/internal/session"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/output"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	config       string
	envFile      string
	logLevel     string
	role         string
	outputFormat string
}

// app is everything a subcommand needs once configuration is loaded.
type app struct {
	conf     *config.Configuration
	logger   *zap.Logger
	session  *session.Session
	ledger   *budget.Ledger
	book     *sales.Book
	registry *masterdata.Registry
	format   string
	out      io.Writer
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "marui-portal",
		Short:         "MARUI budgeting and sales performance portal",
		Long:          "Serve the MARUI portal API, or inspect budgets, sales and dashboards from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.config, "config", constants.DefaultConfigFile, "path to configuration file")
	pf.StringVar(&flags.envFile, "env-file", constants.DefaultEnvFile, "dotenv file loaded before configuration")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVar(&flags.role, "role", "", "role to act as (defaults to session.defaultRole)")
	pf.StringVar(&flags.outputFormat, "output-format", "", "type of output override: pretty, csv")

	root.AddCommand(
		newServeCmd(flags),
		newBudgetCmd(flags),
		newSalesCmd(flags),
		newDashboardCmd(flags),
		newTemplateCmd(flags),
		newRolesCmd(flags),
	)
	return root
}

// loadApp reads configuration, builds the logger and seeds the stores.
func loadApp(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	if err := config.LoadEnvFile(flags.envFile); err != nil {
		return nil, err
	}

	conf, err := config.LoadConfiguration(flags.config)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", flags.config, err)
	}

	logger, err := initializeLogger(conf.Logging, flags.logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.loadApp"),
		)
	}

	// Determine output format (CLI override takes precedence over config)
	format := conf.Output.Format
	if flags.outputFormat != "" {
		format = flags.outputFormat
	}
	if format == "" {
		format = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(format); err != nil {
		return nil, err
	}

	role := conf.DefaultRole()
	if flags.role != "" {
		if role, err = access.ParseRole(flags.role); err != nil {
			return nil, err
		}
	}

	registry := masterdata.NewRegistry(logger)
	ledger := budget.NewLedger(logger)
	book := sales.NewBook(logger, registry)
	fixtures.Load(ledger, book, registry)

	logger.Debug("portal loaded",
		zap.String("op", "main.loadApp"),
		zap.String("role", role.String()),
		zap.String("output", format),
	)

	return &app{
		conf:     conf,
		logger:   logger,
		session:  session.New(role),
		ledger:   ledger,
		book:     book,
		registry: registry,
		format:   format,
		out:      cmd.OutOrStdout(),
	}, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

func (a *app) role() access.Role {
	return a.session.Role()
}

func (a *app) write(tables ...output.Table) error {
	return output.Write(a.out, a.format, tables...)
}

func (a *app) budgetOptions() budget.DashboardOptions {
	d := a.conf.Dashboard
	return budget.DashboardOptions{
		BurnRateWindow: d.BurnRateWindow,
		RiskThreshold:  d.RiskThreshold,
		TopActivities:  d.TopActivities,
	}
}

func (a *app) salesOptions() sales.DashboardOptions {
	return sales.DashboardOptions{TopPerformers: a.conf.Dashboard.TopPerformers}
}

// requirePage refuses pages the acting role cannot open, naming where the
// role lands instead.
func (a *app) requirePage(pages ...access.Page) error {
	role := a.role()
	for _, p := range pages {
		if access.CanAccess(role, p) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s cannot open %s, landing page is %s",
		access.ErrForbidden, role, pages[0], access.DefaultPage(role))
}

// runWithApp wraps a subcommand body with app construction and teardown.
func runWithApp(flags *rootFlags, run func(a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd, flags)
		if err != nil {
			return err
		}
		defer a.close()
		return run(a, args)
	}
}

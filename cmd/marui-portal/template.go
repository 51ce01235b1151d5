package main

import (
	"fmt"
	"os"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/budget"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTemplateCmd(flags *rootFlags) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:       "template budget|actual",
		Short:     "Write an upload template",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(budget.TemplateBudget), string(budget.TemplateActual)},
		RunE: runWithApp(flags, func(a *app, args []string) error {
			kind, err := budget.ParseTemplateKind(args[0])
			if err != nil {
				return err
			}
			page := access.PageUploadBudget
			if kind == budget.TemplateActual {
				page = access.PageActualBudget
			}
			if err := a.requirePage(page); err != nil {
				return err
			}
			if err := validation.ValidateTemplateFormat(format); err != nil {
				return err
			}

			if out == "-" {
				return budget.WriteTemplate(a.out, kind, format)
			}
			path := out
			if path == "" {
				path = budget.TemplateFileName(kind, format)
			}
			return writeTemplateFile(a, path, kind, format)
		}),
	}

	cmd.Flags().StringVar(&format, "format", constants.TemplateFormatCSV, "template format: csv, xlsx")
	cmd.Flags().StringVar(&out, "out", "", "output path, - for stdout (default: template file name)")
	return cmd
}

func writeTemplateFile(a *app, path string, kind budget.TemplateKind, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create template %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := budget.WriteTemplate(f, kind, format); err != nil {
		return err
	}
	a.logger.Info("template written",
		zap.String("op", "main.writeTemplateFile"),
		zap.String("kind", string(kind)),
		zap.String("path", path),
	)
	_, err = fmt.Fprintln(a.out, path)
	return err
}

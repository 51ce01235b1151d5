package main

import (
	"strings"

	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/output"
	"github.com/spf13/cobra"
)

func rolesTable() output.Table {
	t := output.Table{
		Title:   "Portal Roles",
		Headers: []string{"Role", "Landing Page", "Can Input", "Division", "Menu"},
	}
	for _, r := range access.AllRoles {
		division, scoped := access.ScopedDivision(r)
		if !scoped {
			division = constants.FilterAll
		}
		input := "No"
		if access.CanInput(r) {
			input = "Yes"
		}
		var menu []string
		for _, item := range access.Menu(r) {
			menu = append(menu, item.Title)
		}
		t.Rows = append(t.Rows, []string{
			r.String(),
			access.DefaultPage(r).String(),
			input,
			division,
			strings.Join(menu, ", "),
		})
	}
	return t
}

func newRolesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "Show what each portal role can see and do",
		Args:  cobra.NoArgs,
		RunE: runWithApp(flags, func(a *app, _ []string) error {
			return a.write(rolesTable())
		}),
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/agiangrant/skinny/aspect"
)

func newClassesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List control classes with their states and subcontrols",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(cmd)
			if err != nil {
				return err
			}

			reg := e.Registry()
			out := cmd.OutOrStdout()
			for _, c := range reg.Classes() {
				heading := reg.ClassName(c)
				if p := reg.Parent(c); p != aspect.NoClass {
					heading += " : " + reg.ClassName(p)
				}
				fmt.Fprintln(out, headingStyle.Render(heading))

				// Only what the class itself adds; inherited entries show
				// under the ancestor.
				states := reg.States(c) &^ reg.States(reg.Parent(c))
				fmt.Fprintf(out, "  %s %s\n", keyStyle.Render("states:"), joinOrDash(reg.StateNames(c, states)))

				subs := reg.SubcontrolNames(c)
				if p := reg.Parent(c); p != aspect.NoClass {
					subs = lo.Without(subs, reg.SubcontrolNames(p)...)
				}
				fmt.Fprintf(out, "  %s %s\n", keyStyle.Render("subcontrols:"), joinOrDash(subs))
			}
			return nil
		},
	}
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

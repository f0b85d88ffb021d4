package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/agiangrant/skinny/aspect"
	"github.com/agiangrant/skinny/hints"
)

func newDumpCmd(a *app) *cobra.Command {
	var className string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every hint of the skin in key order",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(cmd)
			if err != nil {
				return err
			}

			reg := e.Registry()
			class := aspect.NoClass
			if className != "" {
				c, ok := reg.ClassByName(className)
				if !ok {
					return fmt.Errorf("unknown class %q", className)
				}
				class = c
			}

			subs := append([]aspect.Subcontrol{aspect.Control}, reg.Subcontrols(class)...)
			table := e.Skin().HintTable()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("skin %s (%d hints)", e.Skin().Name(), table.Len())))
			table.Range(func(entry hints.Entry) bool {
				if class == aspect.NoClass || slices.Contains(subs, entry.Aspect.Subcontrol()) {
					fmt.Fprintf(out, "%s = %s\n", keyStyle.Render(reg.Format(class, entry.Aspect)), renderValue(entry.Value))
				}
				return true
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&className, "class", "", "Only show hints of this class and its ancestors")
	return cmd
}

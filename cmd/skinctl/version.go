package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/skinny"
)

var (
	commit = "none"
	date   = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "skinctl %s\ncommit: %s\nbuilt: %s\n", skinny.Version, commit, date)
			return nil
		},
	}
}

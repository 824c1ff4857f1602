package main

import (
	"fmt"

	"github.com/hydrokit/dosat/internal/solubility"
	"github.com/spf13/cobra"
)

// NewModelsCmd creates the models command.
func NewModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List available solubility coefficient sets",
		Long: `Models lists the registered oxygen solubility equations with their
references. Pass a name to the --model flag of compute or table to select
one; the default is "` + solubility.DefaultModel + `".`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range solubility.Names() {
				m := solubility.MustLookup(name)
				marker := " "
				if name == solubility.DefaultModel {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-14s %s\n", marker, m.Name(), m.Reference())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\n(* default)")
		},
	}
}

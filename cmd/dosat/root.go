// Package main provides the entry point for the dosat CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for dosat.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dosat",
		Short: "Dissolved oxygen saturation calculator",
		Long: `dosat computes the percent saturation of dissolved oxygen (DO) in water
from three field measurements: water temperature, atmospheric pressure, and
the DO concentration reported by the sensor.

The theoretical solubility at 100% saturation is evaluated with the Weiss
(1970) equation and corrected for ambient pressure following USGS Office of
Water Quality Technical Memorandum 2011.03. The Benson-Krause (1984)
coefficient set is available as an alternative via --model.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewComputeCmd())
	cmd.AddCommand(NewTableCmd())
	cmd.AddCommand(NewModelsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

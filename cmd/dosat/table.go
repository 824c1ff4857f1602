package main

import (
	"fmt"
	"log/slog"

	"github.com/hydrokit/dosat/internal/config"
	"github.com/hydrokit/dosat/internal/log"
	"github.com/hydrokit/dosat/internal/report"
	"github.com/hydrokit/dosat/internal/solubility"
	"github.com/spf13/cobra"
)

// NewTableCmd creates the table command.
func NewTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print theoretical DO solubility over a temperature range",
		Long: `Table prints the theoretical dissolved oxygen solubility at 100%
saturation over a temperature range at fixed atmospheric pressure.

This is the quick field reference for "how much oxygen should this water
hold": the percent saturation of a reading is the measured concentration
divided by the row for its temperature.

Examples:
  # Default sweep: 0-40 °C in 5 °C steps at 760 mmHg
  dosat table

  # Finer sweep at a mountain station's pressure
  dosat table --min 4 --max 18 --step 0.5 --pressure 640

  # Markdown table for a site report
  dosat table --markdown --output solubility.md`,
		Args: cobra.NoArgs,
		RunE: runTableCmd,
	}

	addCommonFlags(cmd)
	cmd.Flags().StringP("station", "s", "",
		"Station preset from the config file (supplies pressure and model defaults)")
	cmd.Flags().Float64("min", config.DefaultTableMinC,
		"Lowest temperature of the sweep in °C")
	cmd.Flags().Float64("max", config.DefaultTableMaxC,
		"Highest temperature of the sweep in °C")
	cmd.Flags().Float64("step", config.DefaultTableStepC,
		"Temperature increment of the sweep in °C")
	cmd.Flags().Float64("pressure", config.DefaultTablePressureMmHg,
		"Atmospheric pressure of the sweep in mmHg")

	return cmd
}

// runTableCmd executes the table command.
func runTableCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.New(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	minC, err := cmd.Flags().GetFloat64("min")
	if err != nil {
		return err
	}
	maxC, err := cmd.Flags().GetFloat64("max")
	if err != nil {
		return err
	}
	stepC, err := cmd.Flags().GetFloat64("step")
	if err != nil {
		return err
	}

	// Pressure resolution: explicit flag, station/file preset, standard
	// atmosphere.
	pressure, err := cmd.Flags().GetFloat64("pressure")
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("pressure") && cfg.PressureMmHg != 0 {
		pressure = cfg.PressureMmHg
	}

	m, err := solubility.Lookup(cfg.Model)
	if err != nil {
		return err
	}

	table, err := m.Table(minC, maxC, stepC, pressure)
	if err != nil {
		return err
	}

	logger.Debug("computed solubility table",
		"model", table.Model,
		"pressureMmHg", table.PressureMmHg,
		"rows", len(table.Rows),
	)

	return outputResult(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteTable(table)
		return err
	})
}

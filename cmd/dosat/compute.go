package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hydrokit/dosat/internal/config"
	"github.com/hydrokit/dosat/internal/log"
	"github.com/hydrokit/dosat/internal/model"
	"github.com/hydrokit/dosat/internal/report"
	"github.com/hydrokit/dosat/internal/solubility"
	"github.com/spf13/cobra"
)

// NewComputeCmd creates the compute command.
func NewComputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute [temperature °C] [pressure mmHg] [DO mg/L]",
		Short: "Compute percent saturation of dissolved oxygen",
		Long: `Compute calculates the percent saturation of dissolved oxygen from a
water temperature (°C), an atmospheric pressure (mmHg), and the measured DO
concentration (mg/L).

The theoretical solubility at 100% saturation is evaluated for the given
temperature at 760 mmHg and corrected to ambient pressure using the
temperature-dependent vapor pressure of water. Percent saturation is the
measured concentration divided by that solubility, times 100; values above
100 indicate supersaturation.

When a station preset (or the config file defaults) provides a pressure,
the two-argument form without the pressure is accepted.

Examples:
  # Full three-argument form: 20 °C, 760 mmHg, 9.09 mg/L
  dosat compute 20 760 9.09

  # Use the Benson-Krause coefficient set
  dosat compute --model benson-krause 20 760 9.09

  # Pressure from a station preset in .dosat
  dosat compute --station outlet-weir 18.5 8.4

  # JSON output for tool integration
  dosat compute --json 20 760 9.09

Configuration file (.dosat) example:
  defaults:
    model: weiss
  stations:
    outlet-weir:
      pressure: 742.5
      model: benson-krause`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runComputeCmd,
	}

	addCommonFlags(cmd)
	cmd.Flags().StringP("station", "s", "",
		"Station preset from the config file (supplies pressure and model defaults)")

	return cmd
}

// addCommonFlags registers the flags shared by compute and table.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("model", "m", "",
		fmt.Sprintf("Solubility coefficient set to use (one of: %v)", solubility.Names()))
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .dosat in current dir, XDG config dir, or home)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "M", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file path (creates directories if needed)")
	cmd.Flags().IntP("precision", "p", config.DefaultPrecision,
		"Decimal places in human-readable output (presentation only)")
}

// runComputeCmd executes the compute command.
func runComputeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.New(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	meas, err := parseMeasurement(args, cfg)
	if err != nil {
		return err
	}

	m, err := solubility.Lookup(cfg.Model)
	if err != nil {
		return err
	}

	result, err := m.Saturation(meas)
	if err != nil {
		return err
	}

	logger.Debug("computed saturation",
		"model", result.Model,
		"solubilityMgPerL", result.Solubility,
		"percentSaturation", result.PercentSaturation,
	)

	return outputResult(cmd, cfg, func(w report.Writer) error {
		_, err := w.Write(result)
		return err
	})
}

// parseMeasurement converts positional arguments into a Measurement.
// With three arguments they are temperature, pressure, DO. With two they are
// temperature and DO, and the pressure comes from the resolved configuration
// (station preset or file defaults).
func parseMeasurement(args []string, cfg *config.Config) (model.Measurement, error) {
	var meas model.Measurement

	parse := func(name, s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not a number", model.ErrInvalidInput, name, s)
		}
		return v, nil
	}

	var err error
	switch len(args) {
	case 3:
		if meas.TemperatureC, err = parse("temperature", args[0]); err != nil {
			return meas, err
		}
		if meas.PressureMmHg, err = parse("pressure", args[1]); err != nil {
			return meas, err
		}
		if meas.DOConcentration, err = parse("DO concentration", args[2]); err != nil {
			return meas, err
		}
	case 2:
		if cfg.PressureMmHg == 0 {
			return meas, fmt.Errorf("%w: pressure argument missing and no station or configured default pressure", model.ErrInvalidInput)
		}
		if meas.TemperatureC, err = parse("temperature", args[0]); err != nil {
			return meas, err
		}
		meas.PressureMmHg = cfg.PressureMmHg
		if meas.DOConcentration, err = parse("DO concentration", args[1]); err != nil {
			return meas, err
		}
	}

	return meas, nil
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Resolution order for each setting: explicit flag,
// station preset, file defaults, built-in default.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	if cfg.ConfigFilePath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}

	// Load the configuration file. If the user explicitly specified a path,
	// a missing file is an error; otherwise an absent file means defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.Stations, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	} else {
		cfg.Stations = &config.File{Stations: make(map[string]config.StationConfig)}
	}

	// Station preset merged over file defaults.
	station := cfg.Stations.Defaults
	if f := cmd.Flags().Lookup("station"); f != nil {
		cfg.Station = f.Value.String()
		if cfg.Station != "" {
			if !cfg.Stations.HasStation(cfg.Station) {
				return nil, fmt.Errorf("%w: %q", config.ErrUnknownStation, cfg.Station)
			}
			station = cfg.Stations.GetStationConfig(cfg.Station)
		}
	}

	if station.Model != "" {
		cfg.Model = station.Model
	}
	if station.PressureMmHg != 0 {
		cfg.PressureMmHg = station.PressureMmHg
	}
	if station.Precision != nil {
		cfg.Precision = *station.Precision
	}

	// Explicit flags win over presets.
	if cmd.Flags().Changed("model") {
		if cfg.Model, err = cmd.Flags().GetString("model"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("precision") {
		if cfg.Precision, err = cmd.Flags().GetInt("precision"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// outputResult resolves the output destination and format, then invokes
// write with the selected report writer.
func outputResult(cmd *cobra.Command, cfg *config.Config, write func(report.Writer) error) error {
	var output io.Writer = cmd.OutOrStdout()

	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	return write(newReportWriter(cfg, output))
}

// newReportWriter selects the report writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithPrecision(cfg.Precision))
	}
}

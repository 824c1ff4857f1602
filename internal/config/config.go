package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/hydrokit/dosat/internal/solubility"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "dosat"

	// DefaultConfigFile is the default configuration file name, searched in
	// the current directory, the XDG config directory, and the home
	// directory.
	DefaultConfigFile = ".dosat"

	// DefaultPrecision is the number of decimal places used when presenting
	// percent saturation and solubility. One decimal matches the precision
	// of typical field DO sensors; the computation itself is never rounded.
	DefaultPrecision = 1

	// DefaultTablePressureMmHg is the pressure assumed by the table command
	// when no flag or configuration value overrides it: one standard
	// atmosphere.
	DefaultTablePressureMmHg = solubility.StandardPressureMmHg

	// Default temperature sweep of the table command. The full plausible
	// range in 5 degree increments keeps the default table readable.
	DefaultTableMinC  = 0.0
	DefaultTableMaxC  = 40.0
	DefaultTableStepC = 5.0
)

// Config holds the resolved options for one dosat invocation.
// It is populated from CLI flags and the optional .dosat file and passed
// through the application via dependency injection rather than global state.
type Config struct {
	// Model is the name of the solubility coefficient set to use.
	// Resolution order: --model flag, station preset, file defaults,
	// solubility.DefaultModel.
	Model string

	// Station is the name of a station preset from the configuration file.
	// Empty when no preset is requested.
	Station string

	// PressureMmHg is a default atmospheric pressure for invocations that
	// omit the pressure argument, typically supplied by a station preset.
	// Zero means "not configured": compute then requires an explicit
	// pressure argument.
	PressureMmHg float64

	// Precision is the number of decimal places in human-readable output.
	// Rounding happens only at presentation; JSON output carries full
	// float64 precision.
	Precision int

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches for .dosat in the current directory, the XDG config
	// directory, and the user's home directory.
	ConfigFilePath string

	// JSONReport enables JSON output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output instead of human-readable
	// format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path. When set, the report is written
	// to this file instead of stdout; parent directories are created
	// automatically.
	ReportFile string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Stations holds the presets loaded from the configuration file.
	Stations *File
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on zero
// values because several defaults are non-zero (model name, precision).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Model:     solubility.DefaultModel,
		Precision: DefaultPrecision,
	}
}

// XDGConfigDir returns the XDG config directory for dosat.
// On Linux: ~/.config/dosat
// On macOS: ~/Library/Application Support/dosat
// On Windows: %APPDATA%\dosat
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes others
// irrelevant. Measurement values themselves are validated by the model
// package, not here.
func (c *Config) Validate() error {
	if c.Model == "" {
		return ErrNoModel
	}
	if c.Precision < 0 || c.Precision > 10 {
		return ErrInvalidPrecision
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and LoadConfigFile() and
// provide specific information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances in Validate(). This allows callers to use errors.Is()
// for programmatic error handling while still providing human-readable
// messages.
var (
	// ErrNoModel is returned when the solubility model name is empty.
	ErrNoModel = errors.New("no solubility model specified")

	// ErrInvalidPrecision is returned when the presentation precision is
	// negative or absurdly large. float64 carries no more than 17
	// significant decimal digits.
	ErrInvalidPrecision = errors.New("invalid precision: must be between 0 and 10 decimal places")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownStation is returned when --station names a preset that does
	// not exist in the configuration file.
	ErrUnknownStation = errors.New("unknown station: not present in configuration file")

	// ErrConfigNotFound is returned when an explicitly requested
	// configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)

package config

// StationConfig holds per-station defaults for a monitoring site.
// A station typically knows its own barometric pressure (a function of gauge
// altitude and local weather) and the solubility model its operators report
// against.
type StationConfig struct {
	// PressureMmHg is the atmospheric pressure at the station in mmHg.
	// When set, compute accepts the two-argument form (temperature and DO)
	// and takes the pressure from here. Zero means unset.
	PressureMmHg float64 `yaml:"pressure,omitempty"`

	// Model is the solubility coefficient set to use for this station.
	// Empty means use the file defaults or the built-in default.
	Model string `yaml:"model,omitempty"`

	// Precision overrides the presentation precision for this station.
	// A pointer distinguishes "unset" (nil) from an explicit zero, which
	// requests integer-only output.
	Precision *int `yaml:"precision,omitempty"`
}

// File represents the structure of the .dosat configuration file.
type File struct {
	// Defaults contains settings applied to every invocation unless
	// overridden by a station preset or a CLI flag.
	Defaults StationConfig `yaml:"defaults,omitempty"`

	// Stations maps preset names to their station-specific settings,
	// selected with the --station flag.
	Stations map[string]StationConfig `yaml:"stations,omitempty"`
}

// GetStationConfig returns the configuration for a named station, merged
// over the file defaults. Unknown names return the defaults unchanged;
// callers that require the preset to exist should check HasStation first.
func (f *File) GetStationConfig(name string) StationConfig {
	result := f.Defaults

	if station, ok := f.Stations[name]; ok {
		if station.PressureMmHg != 0 {
			result.PressureMmHg = station.PressureMmHg
		}
		if station.Model != "" {
			result.Model = station.Model
		}
		if station.Precision != nil {
			result.Precision = station.Precision
		}
	}

	return result
}

// HasStation reports whether a station preset with the given name exists.
func (f *File) HasStation(name string) bool {
	_, ok := f.Stations[name]
	return ok
}

package model

// SaturationResult is the outcome of a single saturation computation.
// It carries the inputs alongside the derived values so report writers
// need no extra context.
//
// SaturationResult is derived only: it is produced by the solubility
// package and never constructed independently.
type SaturationResult struct {
	// Measurement is the validated input observation.
	Measurement Measurement `json:"measurement"`

	// Model is the name of the coefficient set used (e.g. "weiss").
	Model string `json:"model"`

	// Solubility is the theoretical DO concentration at 100 % saturation
	// for the measurement's temperature and pressure, in mg/L.
	Solubility float64 `json:"solubilityMgPerL"`

	// PercentSaturation is the measured concentration divided by the
	// theoretical solubility, times 100. Values above 100 are valid and
	// indicate supersaturation.
	PercentSaturation float64 `json:"percentSaturation"`
}

// Supersaturated reports whether the water holds more oxygen than its
// theoretical equilibrium solubility.
func (r *SaturationResult) Supersaturated() bool {
	return r.PercentSaturation > 100
}

// SolubilityRow is a single entry of a SolubilityTable.
type SolubilityRow struct {
	// TemperatureC is the water temperature of this row in °C.
	TemperatureC float64 `json:"temperatureC"`

	// Solubility is the theoretical DO solubility at this temperature
	// and the table's pressure, in mg/L.
	Solubility float64 `json:"solubilityMgPerL"`
}

// SolubilityTable is a sweep of theoretical DO solubility over a
// temperature range at fixed atmospheric pressure.
type SolubilityTable struct {
	// Model is the name of the coefficient set used.
	Model string `json:"model"`

	// PressureMmHg is the atmospheric pressure shared by all rows.
	PressureMmHg float64 `json:"pressureMmHg"`

	// Rows holds the sweep in ascending temperature order.
	Rows []SolubilityRow `json:"rows"`
}

package model

import (
	"fmt"
	"math"
)

// Plausibility bounds for field measurements.
// Values outside these ranges are rejected with ErrInvalidInput before any
// computation proceeds.
const (
	// MinTemperatureC is the lowest plausible water temperature. Natural
	// waters freeze close to 0 °C; brines can stay liquid slightly below.
	MinTemperatureC = -2.0

	// MaxTemperatureC is the highest plausible temperature for the waters
	// this tool targets. The Weiss polynomial is fitted for 0-40 °C, so we
	// refuse to extrapolate beyond that range.
	MaxTemperatureC = 40.0

	// MaxPressureMmHg caps the atmospheric pressure. The highest sea-level
	// pressure ever recorded is around 812 mmHg; stations below sea level
	// (e.g. the Dead Sea shore) read slightly higher, so 900 leaves margin.
	// The lower bound is "strictly positive": very low values are physically
	// implausible but are caught by the solubility domain check instead,
	// which reports them as a non-physical result rather than a bad input.
	MaxPressureMmHg = 900.0

	// MaxDOConcentration caps the measured DO concentration in mg/L.
	// Equilibrium solubility tops out below 15 mg/L in the supported
	// temperature range; heavy supersaturation from photosynthesis or
	// turbulence rarely exceeds twice that. 50 mg/L is far past any value
	// a working sensor reports.
	MaxDOConcentration = 50.0
)

// Measurement is a single dissolved-oxygen field observation.
// It holds the three inputs of the saturation computation.
//
// Units convention: temperature in degrees Celsius, atmospheric pressure in
// millimeters of mercury (Torr), DO concentration in milligrams per liter.
type Measurement struct {
	// TemperatureC is the water temperature in °C.
	TemperatureC float64 `json:"temperatureC"`

	// PressureMmHg is the atmospheric pressure at the site in mmHg.
	PressureMmHg float64 `json:"pressureMmHg"`

	// DOConcentration is the measured dissolved oxygen in mg/L.
	DOConcentration float64 `json:"doMgPerL"`
}

// ValidateTemperature checks that t is a finite temperature within the
// plausible aquatic range.
func ValidateTemperature(t float64) error {
	if !isFinite(t) {
		return fmt.Errorf("%w: temperature=%v", ErrNotFinite, t)
	}
	if t < MinTemperatureC || t > MaxTemperatureC {
		return fmt.Errorf("%w: %g °C (want %g to %g)", ErrTemperatureOutOfRange, t, MinTemperatureC, MaxTemperatureC)
	}
	return nil
}

// ValidatePressure checks that p is a finite, strictly positive atmospheric
// pressure no greater than MaxPressureMmHg.
func ValidatePressure(p float64) error {
	if !isFinite(p) {
		return fmt.Errorf("%w: pressure=%v", ErrNotFinite, p)
	}
	if p <= 0 || p > MaxPressureMmHg {
		return fmt.Errorf("%w: %g mmHg (want > 0 and <= %g)", ErrPressureOutOfRange, p, MaxPressureMmHg)
	}
	return nil
}

// ValidateConcentration checks that c is a finite, non-negative DO
// concentration no greater than MaxDOConcentration.
func ValidateConcentration(c float64) error {
	if !isFinite(c) {
		return fmt.Errorf("%w: concentration=%v", ErrNotFinite, c)
	}
	if c < 0 || c > MaxDOConcentration {
		return fmt.Errorf("%w: %g mg/L (want 0 to %g)", ErrConcentrationOutOfRange, c, MaxDOConcentration)
	}
	return nil
}

// Validate checks all three fields of the measurement.
// It returns the first error found; fixing one input often changes the
// others' relevance, so collecting all errors adds little.
func (m Measurement) Validate() error {
	if err := ValidateTemperature(m.TemperatureC); err != nil {
		return err
	}
	if err := ValidatePressure(m.PressureMmHg); err != nil {
		return err
	}
	return ValidateConcentration(m.DOConcentration)
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

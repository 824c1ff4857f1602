package solubility

import "math"

// StandardPressureMmHg is one standard atmosphere expressed in millimeters
// of mercury. The baseline solubility polynomials are fitted at this
// pressure; the pressure correction rescales their output to ambient
// conditions.
const StandardPressureMmHg = 760.0

// Antoine equation constants for the vapor pressure of water in mmHg,
// as used by USGS TM 2011.03. Valid over roughly 0-60 °C.
const (
	antoineA = 8.10765
	antoineB = 1750.286
	antoineC = 235.0
)

// VaporPressureOfWater returns the vapor pressure of water in mmHg at the
// given temperature in °C:
//
//	u = 10^(A - B/(C + t))
//
// Reference values: 4.6 mmHg at 0 °C, 6.5 at 5 °C, 92.5 at 50 °C.
func VaporPressureOfWater(tempC float64) float64 {
	return math.Pow(10, antoineA-antoineB/(antoineC+tempC))
}

// PressureCorrection returns the factor F that rescales a solubility fitted
// at 760 mmHg to the ambient pressure P:
//
//	F = (P - u) / (760 - u)
//
// where u is the vapor pressure of water at the given temperature. F is
// exactly 1 at standard pressure and becomes negative when the ambient
// pressure drops below the vapor pressure of water, which the caller must
// treat as a domain error.
func PressureCorrection(pressureMmHg, tempC float64) float64 {
	u := VaporPressureOfWater(tempC)
	return (pressureMmHg - u) / (StandardPressureMmHg - u)
}

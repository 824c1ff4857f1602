package solubility

import (
	"fmt"
	"math"

	"github.com/hydrokit/dosat/internal/model"
)

// AtSaturation returns the theoretical DO solubility Cs in mg/L at 100 %
// saturation for the given water temperature (°C) and atmospheric pressure
// (mmHg).
//
// Inputs are validated first (model.ErrInvalidInput taxonomy). A computed
// solubility of zero or less yields ErrNonphysicalSolubility: the pressure
// correction goes negative when the ambient pressure falls below the vapor
// pressure of water, and percent saturation is undefined there.
func (m Model) AtSaturation(tempC, pressureMmHg float64) (float64, error) {
	if err := model.ValidateTemperature(tempC); err != nil {
		return 0, err
	}
	if err := model.ValidatePressure(pressureMmHg); err != nil {
		return 0, err
	}

	cs := m.baseline(tempC+kelvinOffset) * PressureCorrection(pressureMmHg, tempC)
	if cs <= 0 {
		return 0, fmt.Errorf("%w: %g mg/L at %g °C, %g mmHg",
			ErrNonphysicalSolubility, cs, tempC, pressureMmHg)
	}
	return cs, nil
}

// Saturation computes the percent saturation for a measurement:
//
//	percent = measured / Cs * 100
//
// The measurement is validated before any computation; the returned result
// carries the inputs, the model name, and the intermediate solubility so
// report writers need no extra context. Values above 100 are valid and
// indicate supersaturation.
func (m Model) Saturation(meas model.Measurement) (*model.SaturationResult, error) {
	if err := meas.Validate(); err != nil {
		return nil, err
	}

	cs, err := m.AtSaturation(meas.TemperatureC, meas.PressureMmHg)
	if err != nil {
		return nil, err
	}

	return &model.SaturationResult{
		Measurement:       meas,
		Model:             m.name,
		Solubility:        cs,
		PercentSaturation: meas.DOConcentration / cs * 100,
	}, nil
}

// Table computes a solubility sweep from minC to maxC (inclusive, subject to
// floating-point step accumulation) in increments of stepC, all at the given
// pressure. The range must be non-empty, the step positive, and every row
// within the plausible temperature bounds.
func (m Model) Table(minC, maxC, stepC, pressureMmHg float64) (*model.SolubilityTable, error) {
	if stepC <= 0 || math.IsNaN(stepC) || math.IsInf(stepC, 1) {
		return nil, fmt.Errorf("%w: step %g (want finite and > 0)", ErrInvalidRange, stepC)
	}
	if minC > maxC {
		return nil, fmt.Errorf("%w: min %g > max %g", ErrInvalidRange, minC, maxC)
	}

	table := &model.SolubilityTable{
		Model:        m.name,
		PressureMmHg: pressureMmHg,
	}

	// Rows are computed as minC + i*stepC rather than by accumulating
	// t += stepC, and the last row is clamped to maxC; accumulated
	// floating-point error must neither drop the final row nor push a
	// temperature past the validation ceiling.
	for i := 0; ; i++ {
		t := minC + float64(i)*stepC
		if t > maxC+stepC*1e-9 {
			break
		}
		if math.Abs(t-maxC) <= stepC*1e-9 {
			t = maxC
		}
		cs, err := m.AtSaturation(t, pressureMmHg)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, model.SolubilityRow{
			TemperatureC: t,
			Solubility:   cs,
		})
	}
	return table, nil
}

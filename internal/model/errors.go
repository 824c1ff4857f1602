package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the base error for all measurement validation failures.
// Callers can match the whole taxonomy with errors.Is(err, ErrInvalidInput)
// or a specific field error with the sentinels below.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances at each validation site. This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. The per-field sentinels wrap ErrInvalidInput so
// both granularities work.
var ErrInvalidInput = errors.New("invalid input")

var (
	// ErrNotFinite is returned when an input is NaN or infinite.
	// Such values typically indicate a parse failure or a broken sensor
	// reading upstream; they are rejected before any computation.
	ErrNotFinite = fmt.Errorf("%w: value is not a finite number", ErrInvalidInput)

	// ErrTemperatureOutOfRange is returned when the water temperature falls
	// outside the plausible aquatic range [MinTemperatureC, MaxTemperatureC].
	ErrTemperatureOutOfRange = fmt.Errorf("%w: temperature outside plausible aquatic range", ErrInvalidInput)

	// ErrPressureOutOfRange is returned when the atmospheric pressure is not
	// strictly positive or exceeds MaxPressureMmHg.
	ErrPressureOutOfRange = fmt.Errorf("%w: pressure outside plausible atmospheric range", ErrInvalidInput)

	// ErrConcentrationOutOfRange is returned when the measured DO
	// concentration is negative or exceeds MaxDOConcentration.
	ErrConcentrationOutOfRange = fmt.Errorf("%w: DO concentration outside plausible range", ErrInvalidInput)
)

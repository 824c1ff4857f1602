package solubility

import "errors"

var (
	// ErrNonphysicalSolubility is returned when the computed solubility at
	// the given temperature and pressure is zero or negative. This happens
	// for degenerate input combinations, e.g. an ambient pressure below the
	// vapor pressure of water, where percent saturation is undefined.
	ErrNonphysicalSolubility = errors.New("computed solubility is not physical (zero or negative)")

	// ErrUnknownModel is returned by Lookup when no coefficient set with
	// the requested name is registered. Use Names to list valid names.
	ErrUnknownModel = errors.New("unknown solubility model")

	// ErrInvalidRange is returned by Model.Table when the requested
	// temperature sweep is empty or its step is not positive.
	ErrInvalidRange = errors.New("invalid temperature range")
)

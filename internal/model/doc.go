// Package model defines the core value types used throughout dosat.
//
// This package contains the following main types:
//   - Measurement: a single field observation (temperature, pressure, DO)
//   - SaturationResult: the computed percent saturation with its inputs
//   - SolubilityTable: a solubility sweep over a temperature range
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (solubility, report, cmd) need these types,
// so centralizing them prevents import cycles.
//
// All types are transient: they live for the duration of a single command
// invocation and are never persisted. They are serializable to JSON for
// report output.
package model

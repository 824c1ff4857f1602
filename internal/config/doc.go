// Package config provides configuration structures and utilities for dosat.
// It defines the options resolved from CLI flags and the optional .dosat
// YAML file, including named station presets with site barometric pressure
// and preferred solubility model.
package config

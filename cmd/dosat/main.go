// Package main provides the entry point for the dosat CLI.
//
// dosat computes the percent saturation of dissolved oxygen (DO) in water
// from water temperature, atmospheric pressure, and the measured DO
// concentration, using the Weiss method as adapted by USGS TM 2011.03.
//
// Usage:
//
//	dosat compute <temperature °C> <pressure mmHg> <DO mg/L>
//	dosat table --pressure 760
//
// See --help for all available options.
package main

// main is the entry point for dosat.
func main() {
	Execute()
}

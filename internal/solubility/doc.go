// Package solubility implements the dissolved-oxygen saturation computation.
//
// The computation follows the approach described in USGS Office of Water
// Quality Technical Memorandum 2011.03:
//
//  1. Evaluate an empirical polynomial to obtain the theoretical oxygen
//     solubility at 760 mmHg for the given water temperature.
//  2. Correct for the deviation of the actual atmospheric pressure from
//     760 mmHg, using the temperature-dependent vapor pressure of water.
//  3. Divide the measured DO concentration by the corrected solubility and
//     multiply by 100 to obtain percent saturation.
//
// Two coefficient sets are registered: the Weiss (1970) equation, which is
// the default, and the Benson-Krause (1984) equation preferred by the USGS
// memo. Both agree to within about 0.2 % over the supported temperature
// range. Coefficients are named constants taken verbatim from the cited
// references so they can be checked against the published tables.
//
// All functions are pure and safe for concurrent use. Intermediate
// arithmetic is carried out in float64 with no rounding; rounding happens
// only at presentation time in the report package.
package solubility

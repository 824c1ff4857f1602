package solubility

import (
	"fmt"
	"math"
	"sort"
)

// kelvinOffset converts degrees Celsius to kelvin.
const kelvinOffset = 273.15

// Weiss (1970) coefficients for the natural-log solubility polynomial:
//
//	ln(C) = A1 + A2*(100/T) + A3*ln(T/100) + A4*(T/100)
//
// with T in kelvin and C in mL/L. The weissMgPerML factor converts the
// result to mg/L (density of oxygen gas at STP).
const (
	weissA1 = -173.4292
	weissA2 = 249.6339
	weissA3 = 143.3483
	weissA4 = -21.8493

	weissMgPerML = 1.42905
)

// Benson-Krause (1984) coefficients, as adopted by USGS TM 2011.03:
//
//	ln(Cs) = B0 + B1/T + B2/T^2 + B3/T^3 + B4/T^4
//
// with T in kelvin and Cs directly in mg/L.
const (
	bensonKrauseB0 = -139.34411
	bensonKrauseB1 = 1.575701e5
	bensonKrauseB2 = -6.642308e7
	bensonKrauseB3 = 1.243800e10
	bensonKrauseB4 = -8.621949e11
)

// Model names accepted by Lookup.
const (
	// ModelWeiss is the Weiss (1970) equation, the default.
	ModelWeiss = "weiss"

	// ModelBensonKrause is the Benson-Krause (1984) equation preferred by
	// the USGS memo.
	ModelBensonKrause = "benson-krause"

	// DefaultModel is the coefficient set used when none is configured.
	DefaultModel = ModelWeiss
)

// Model is one empirical oxygen solubility equation. The zero value is not
// usable; obtain instances through Lookup or MustLookup.
type Model struct {
	name      string
	reference string

	// baseline returns the solubility in mg/L at 760 mmHg for the given
	// temperature in kelvin.
	baseline func(kelvin float64) float64
}

// Name returns the registry name of the model (e.g. "weiss").
func (m Model) Name() string { return m.name }

// Reference returns the citation for the model's coefficient set.
func (m Model) Reference() string { return m.reference }

// models is the registry of available coefficient sets.
//
// Design decision: coefficient sets are table-driven so an alternative
// equation can be added (or verified against its published table) without
// touching the calling contract.
var models = map[string]Model{
	ModelWeiss: {
		name:      ModelWeiss,
		reference: "Weiss (1970), Deep-Sea Research 17, via USGS TM 2011.03",
		baseline: func(kelvin float64) float64 {
			return weissMgPerML * math.Exp(
				weissA1+
					weissA2*(100/kelvin)+
					weissA3*math.Log(kelvin/100)+
					weissA4*(kelvin/100))
		},
	},
	ModelBensonKrause: {
		name:      ModelBensonKrause,
		reference: "Benson and Krause (1984), Limnology and Oceanography 29, via USGS TM 2011.03",
		baseline: func(kelvin float64) float64 {
			return math.Exp(
				bensonKrauseB0 +
					bensonKrauseB1/kelvin +
					bensonKrauseB2/(kelvin*kelvin) +
					bensonKrauseB3/(kelvin*kelvin*kelvin) +
					bensonKrauseB4/(kelvin*kelvin*kelvin*kelvin))
		},
	},
}

// Lookup returns the model registered under name.
// It returns ErrUnknownModel when no such coefficient set exists.
func Lookup(name string) (Model, error) {
	m, ok := models[name]
	if !ok {
		return Model{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownModel, name, Names())
	}
	return m, nil
}

// MustLookup is like Lookup but panics on unknown names.
// It is intended for compile-time-constant names only.
func MustLookup(name string) Model {
	m, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Names returns the registered model names in sorted order.
func Names() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

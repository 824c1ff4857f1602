package solubility

import (
	"math"
	"testing"
)

// TestVaporPressureOfWater checks the Antoine equation against published
// vapor pressure values (Wikipedia, "Vapour pressure of water").
func TestVaporPressureOfWater(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		tempC    float64
		wantMmHg float64
	}{
		{"freezing point", 0, 4.6},
		{"5 degrees", 5, 6.5},
		{"room temperature", 22, 19.8},
		{"50 degrees", 50, 92.5},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := VaporPressureOfWater(tc.tempC)
			if math.Abs(got-tc.wantMmHg) > 0.05 {
				t.Errorf("VaporPressureOfWater(%g) = %g, want %g ± 0.05", tc.tempC, got, tc.wantMmHg)
			}
		})
	}
}

// TestVaporPressureMonotonic verifies that vapor pressure strictly increases
// with temperature over the supported range.
func TestVaporPressureMonotonic(t *testing.T) {
	t.Parallel()

	prev := VaporPressureOfWater(-2)
	for tempC := -1.5; tempC <= 40; tempC += 0.5 {
		cur := VaporPressureOfWater(tempC)
		if cur <= prev {
			t.Fatalf("vapor pressure not increasing at %g °C: %g <= %g", tempC, cur, prev)
		}
		prev = cur
	}
}

// TestPressureCorrection verifies the correction factor behavior.
func TestPressureCorrection(t *testing.T) {
	t.Parallel()

	t.Run("exactly 1 at standard pressure", func(t *testing.T) {
		t.Parallel()
		for _, tempC := range []float64{0, 10, 22, 40} {
			if got := PressureCorrection(StandardPressureMmHg, tempC); got != 1 {
				t.Errorf("PressureCorrection(760, %g) = %g, want exactly 1", tempC, got)
			}
		}
	})

	t.Run("below 1 at reduced pressure", func(t *testing.T) {
		t.Parallel()
		if got := PressureCorrection(700, 20); got >= 1 || got <= 0 {
			t.Errorf("PressureCorrection(700, 20) = %g, want in (0, 1)", got)
		}
	})

	t.Run("above 1 above standard pressure", func(t *testing.T) {
		t.Parallel()
		if got := PressureCorrection(780, 20); got <= 1 {
			t.Errorf("PressureCorrection(780, 20) = %g, want > 1", got)
		}
	})

	t.Run("negative below the vapor pressure of water", func(t *testing.T) {
		t.Parallel()
		// Vapor pressure at 20 °C is about 17.5 mmHg.
		if got := PressureCorrection(10, 20); got >= 0 {
			t.Errorf("PressureCorrection(10, 20) = %g, want negative", got)
		}
	})
}

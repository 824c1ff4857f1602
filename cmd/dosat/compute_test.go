package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hydrokit/dosat/internal/config"
	"github.com/hydrokit/dosat/internal/model"
	"github.com/hydrokit/dosat/internal/solubility"
)

// runDosat executes the root command with the given arguments and returns
// captured stdout.
func runDosat(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// writeTestConfig writes a .dosat file with a station preset and returns
// its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
	content := `defaults:
  model: weiss
stations:
  outlet-weir:
    pressure: 742.5
    model: benson-krause
  whole-numbers:
    pressure: 760
    precision: 0
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// TestComputeCmd tests the compute command end to end.
func TestComputeCmd(t *testing.T) {
	t.Parallel()

	t.Run("worked example reads near 100 percent", func(t *testing.T) {
		t.Parallel()

		out, err := runDosat(t, "compute", "20", "760", "9.09")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "DO saturation: 100.2 %") {
			t.Errorf("expected saturation near 100.2 %%, got %q", out)
		}
		if !strings.Contains(out, "supersaturated") {
			t.Errorf("expected supersaturation note, got %q", out)
		}
	})

	t.Run("undersaturated example", func(t *testing.T) {
		t.Parallel()

		out, err := runDosat(t, "compute", "25", "760", "6.0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "DO saturation: 72.8 %") {
			t.Errorf("expected 72.8 %%, got %q", out)
		}
	})

	t.Run("json output decodes", func(t *testing.T) {
		t.Parallel()

		out, err := runDosat(t, "compute", "--json", "20", "760", "9.09")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var result model.SaturationResult
		if err := json.Unmarshal([]byte(out), &result); err != nil {
			t.Fatalf("output is not valid JSON: %v\n%s", err, out)
		}
		if result.Model != "weiss" {
			t.Errorf("Model = %q, want 'weiss'", result.Model)
		}
		if result.PercentSaturation < 100 || result.PercentSaturation > 100.5 {
			t.Errorf("PercentSaturation = %g, want ~100.18", result.PercentSaturation)
		}
	})

	t.Run("markdown output", func(t *testing.T) {
		t.Parallel()

		out, err := runDosat(t, "compute", "--markdown", "20", "760", "9.09")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "# Dissolved Oxygen Saturation") {
			t.Errorf("expected markdown heading, got %q", out)
		}
	})

	t.Run("benson-krause model flag", func(t *testing.T) {
		t.Parallel()

		out, err := runDosat(t, "compute", "--model", "benson-krause", "--json", "20", "760", "9.09")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var result model.SaturationResult
		if err := json.Unmarshal([]byte(out), &result); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if result.Model != "benson-krause" {
			t.Errorf("Model = %q, want 'benson-krause'", result.Model)
		}
	})

	t.Run("precision flag controls presentation", func(t *testing.T) {
		t.Parallel()

		out, err := runDosat(t, "compute", "--precision", "3", "20", "760", "9.09")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "100.176 %") {
			t.Errorf("expected three decimals, got %q", out)
		}
	})

	t.Run("station preset supplies pressure and model", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeTestConfig(t)
		out, err := runDosat(t, "compute", "--config", cfgPath, "--station", "outlet-weir", "--json", "18.5", "8.4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var result model.SaturationResult
		if err := json.Unmarshal([]byte(out), &result); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if result.Measurement.PressureMmHg != 742.5 {
			t.Errorf("PressureMmHg = %g, want 742.5 from station preset", result.Measurement.PressureMmHg)
		}
		if result.Model != "benson-krause" {
			t.Errorf("Model = %q, want 'benson-krause' from station preset", result.Model)
		}
	})

	t.Run("station preset with zero precision yields integer output", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeTestConfig(t)
		out, err := runDosat(t, "compute", "--config", cfgPath, "--station", "whole-numbers", "20", "9.09")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "DO saturation: 100 %") {
			t.Errorf("expected integer-rounded saturation, got %q", out)
		}
	})

	t.Run("writes report to output file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "reports", "site.md")
		if _, err := runDosat(t, "compute", "--markdown", "--output", path, "20", "760", "9.09"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		if !strings.Contains(string(data), "# Dissolved Oxygen Saturation") {
			t.Errorf("report file missing heading: %q", data)
		}
	})
}

// TestComputeCmdErrors tests failure modes.
func TestComputeCmdErrors(t *testing.T) {
	t.Parallel()

	t.Run("non-numeric argument", func(t *testing.T) {
		t.Parallel()

		_, err := runDosat(t, "compute", "warmish", "760", "9.09")
		if !errors.Is(err, model.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("temperature out of range", func(t *testing.T) {
		t.Parallel()

		// "--" stops flag parsing so the negative temperature is an argument.
		_, err := runDosat(t, "compute", "--", "-50", "760", "9.09")
		if !errors.Is(err, model.ErrTemperatureOutOfRange) {
			t.Errorf("expected ErrTemperatureOutOfRange, got %v", err)
		}
	})

	t.Run("pressure below vapor pressure is a domain error", func(t *testing.T) {
		t.Parallel()

		_, err := runDosat(t, "compute", "20", "10", "9.09")
		if !errors.Is(err, solubility.ErrNonphysicalSolubility) {
			t.Errorf("expected ErrNonphysicalSolubility, got %v", err)
		}
	})

	t.Run("unknown model", func(t *testing.T) {
		t.Parallel()

		_, err := runDosat(t, "compute", "--model", "nope", "20", "760", "9.09")
		if !errors.Is(err, solubility.ErrUnknownModel) {
			t.Errorf("expected ErrUnknownModel, got %v", err)
		}
	})

	t.Run("conflicting report formats", func(t *testing.T) {
		t.Parallel()

		_, err := runDosat(t, "compute", "--json", "--markdown", "20", "760", "9.09")
		if !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("two arguments without configured pressure", func(t *testing.T) {
		t.Parallel()

		_, err := runDosat(t, "compute", "20", "9.09")
		if !errors.Is(err, model.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown station", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeTestConfig(t)
		_, err := runDosat(t, "compute", "--config", cfgPath, "--station", "no-such-site", "20", "760", "9.09")
		if !errors.Is(err, config.ErrUnknownStation) {
			t.Errorf("expected ErrUnknownStation, got %v", err)
		}
	})

	t.Run("explicit missing config file", func(t *testing.T) {
		t.Parallel()

		_, err := runDosat(t, "compute", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "20", "760", "9.09")
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("wrong argument count", func(t *testing.T) {
		t.Parallel()

		if _, err := runDosat(t, "compute", "20"); err == nil {
			t.Error("expected an error for a single argument")
		}
		if _, err := runDosat(t, "compute", "20", "760", "9.09", "extra"); err == nil {
			t.Error("expected an error for four arguments")
		}
	})
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/hydrokit/dosat/internal/model"
)

// defaultPrecision is the number of decimal places used when no option
// overrides it. One decimal matches typical field sensor resolution.
const defaultPrecision = 1

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because:
//  1. It works in all terminals without compatibility issues
//  2. It's easier to pipe to files or other tools
type SimpleWriter struct {
	baseWriter

	// precision is the number of decimal places for presented values.
	precision int
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithPrecision sets the number of decimal places in the output.
// Values outside 0-10 are ignored.
func WithPrecision(digits int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		if digits >= 0 && digits <= 10 {
			w.precision = digits
		}
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		precision:  defaultPrecision,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the saturation result in human-readable format.
func (w *SimpleWriter) Write(result *model.SaturationResult) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "DO saturation: %s %%\n", w.format(result.PercentSaturation))
	if result.Supersaturated() {
		sb.WriteString("  (supersaturated: measured DO exceeds equilibrium solubility)\n")
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  water temperature:    %s °C\n", w.format(result.Measurement.TemperatureC))
	fmt.Fprintf(&sb, "  atmospheric pressure: %s mmHg\n", w.format(result.Measurement.PressureMmHg))
	fmt.Fprintf(&sb, "  measured DO:          %s mg/L\n", w.format(result.Measurement.DOConcentration))
	fmt.Fprintf(&sb, "  DO at 100%% sat.:      %s mg/L (%s)\n", w.format(result.Solubility), result.Model)

	return io.WriteString(w.output, sb.String())
}

// WriteTable outputs a solubility sweep as aligned text columns.
func (w *SimpleWriter) WriteTable(table *model.SolubilityTable) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Oxygen solubility at %s mmHg (%s)\n\n", w.format(table.PressureMmHg), table.Model)
	sb.WriteString("  temp °C    DO at 100% sat. mg/L\n")
	sb.WriteString("  -------    --------------------\n")
	for _, row := range table.Rows {
		fmt.Fprintf(&sb, "  %7s    %20s\n", w.format(row.TemperatureC), w.format(row.Solubility))
	}

	return io.WriteString(w.output, sb.String())
}

// format renders a value with the writer's precision.
func (w *SimpleWriter) format(v float64) string {
	return fmt.Sprintf("%.*f", w.precision, v)
}

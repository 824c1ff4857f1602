package report

import (
	"io"
	"strconv"

	"github.com/hydrokit/dosat/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting a
// site visit summary into a wiki or pull request.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables and consistent escaping.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the saturation result in Markdown format.
func (w *MarkdownWriter) Write(result *model.SaturationResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Dissolved Oxygen Saturation")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Percent saturation", "**" + formatFloat(result.PercentSaturation, 1) + " %**"},
			{"Water temperature", formatFloat(result.Measurement.TemperatureC, 1) + " °C"},
			{"Atmospheric pressure", formatFloat(result.Measurement.PressureMmHg, 1) + " mmHg"},
			{"Measured DO", formatFloat(result.Measurement.DOConcentration, 2) + " mg/L"},
			{"DO at 100 % saturation", formatFloat(result.Solubility, 2) + " mg/L"},
			{"Solubility model", "`" + result.Model + "`"},
		},
	})
	md.PlainText("")

	if result.Supersaturated() {
		md.PlainText("Measured DO exceeds the equilibrium solubility: the water is supersaturated.")
		md.PlainText("")
	}

	w.writeFooter(md, result.Model)

	return len(md.String()), md.Build()
}

// WriteTable outputs a solubility sweep in Markdown format.
func (w *MarkdownWriter) WriteTable(table *model.SolubilityTable) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Oxygen Solubility Table")
	md.PlainText("")
	md.PlainTextf("Theoretical DO solubility at %s mmHg (`%s`).",
		formatFloat(table.PressureMmHg, 1), table.Model)
	md.PlainText("")

	rows := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = []string{
			formatFloat(row.TemperatureC, 1),
			formatFloat(row.Solubility, 2),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Temperature (°C)", "DO at 100 % sat. (mg/L)"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writeFooter(md, table.Model)

	return len(md.String()), md.Build()
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, model string) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Computed with the `%s` solubility equation per USGS TM 2011.03*", model)
}

// formatFloat renders v with the given number of decimal places.
func formatFloat(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

package report

import (
	"bytes"
	"strings"
	"testing"
)

// TestMarkdownWriterWrite tests Markdown result output.
func TestMarkdownWriterWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := NewMarkdownWriter(&buf).Write(sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero byte count")
	}

	out := buf.String()

	for _, want := range []string{
		"# Dissolved Oxygen Saturation",
		"| Property",
		"Percent saturation",
		"100.2",
		"`weiss`",
		"supersaturated",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

// TestMarkdownWriterWriteNoSupersaturation verifies the note is absent for
// undersaturated readings.
func TestMarkdownWriterWriteNoSupersaturation(t *testing.T) {
	t.Parallel()

	result := sampleResult()
	result.PercentSaturation = 72.8

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "supersaturated") {
		t.Errorf("unexpected supersaturation note:\n%s", buf.String())
	}
}

// TestMarkdownWriterWriteTable tests Markdown sweep output.
func TestMarkdownWriterWriteTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).WriteTable(sampleTable()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Oxygen Solubility Table",
		"Temperature (°C)",
		"14.60",
		"9.07",
		"6.41",
		"`weiss`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown table missing %q:\n%s", want, out)
		}
	}
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/doylet/CapacityReset-sub000/internal/evaluation"
	"github.com/doylet/CapacityReset-sub000/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of records to display
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractionResult outputs a human-readable summary of extracted skills.
func (p *Printer) PrintExtractionResult(result *types.ExtractionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Document: %s\n", result.DocumentID))
	sb.WriteString(fmt.Sprintf("Version:  %s\n", result.ExtractorVersion))
	sb.WriteString(fmt.Sprintf("Records:  %d\n", len(result.Records)))

	if len(result.Records) > 0 {
		sb.WriteString("\n")
		count := min(len(result.Records), maxItemsToShow)
		for i := 0; i < count; i++ {
			r := result.Records[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %.2f)\n", r.CanonicalName, r.Category, r.Confidence))
		}
		if len(result.Records) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Records)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs an evaluation report with per-category recall.
func (p *Printer) PrintReport(report *evaluation.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:       %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Version:   %s\n", report.ExtractorVersion))
	sb.WriteString(fmt.Sprintf("Documents: %d\n", report.Documents))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Precision: %.3f\n", report.Precision))
	sb.WriteString(fmt.Sprintf("Recall:    %.3f\n", report.Recall))
	sb.WriteString(fmt.Sprintf("F1:        %.3f\n", report.F1))

	if len(report.PerCategory) > 0 {
		sb.WriteString("\nRecall by category:\n")
		for _, cat := range report.Categories() {
			m := report.PerCategory[cat]
			sb.WriteString(fmt.Sprintf("  • %-24s %d/%d (%.2f)\n", cat, m.Found, m.Expected, m.Recall))
		}
	}

	p.printBox("EVALUATION REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

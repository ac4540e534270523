package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/nao1215/pymoli/internal/model"
)

// ruleWidth is the width of the "=" and "-" section rules.
const ruleWidth = 70

// SimpleWriter outputs human-readable text reports for terminal display.
// Each view is a titled section rendered as a text table.
type SimpleWriter struct {
	baseWriter
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithTop limits the ranked sections to the first n rows.
// Zero shows every row.
func WithTop(n int) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.top = n
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)

	for _, s := range buildSections(report, w.top) {
		if err := w.writeSection(&sb, s); err != nil {
			return 0, fmt.Errorf("render %s: %w", s.title, err)
		}
	}

	w.writeFooter(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report banner with source information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("                     HEROES OF PYMOLI PURCHASE REPORT\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")

	for _, src := range report.Sources {
		sb.WriteString(fmt.Sprintf("Source:    %s\n", src))
	}
	sb.WriteString(fmt.Sprintf("Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString("\n")
}

// writeSection writes one view as a titled table.
func (w *SimpleWriter) writeSection(sb *strings.Builder, s section) error {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(strings.ToUpper(s.title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")

	if len(s.rows) == 0 {
		sb.WriteString("  No purchases\n\n")
		return nil
	}

	header := make([]any, len(s.header))
	for i, h := range s.header {
		header[i] = h
	}

	table := tablewriter.NewWriter(sb)
	table.Header(header...)
	if err := table.Bulk(s.rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	sb.WriteString("\n")
	return nil
}

// writeFooter writes the report footer, including any screen-name conflicts.
func (w *SimpleWriter) writeFooter(sb *strings.Builder, report *model.Report) {
	if len(report.Conflicts) > 0 {
		sb.WriteString(fmt.Sprintf("Note: %d screen name(s) appear with more than one age or gender; the first row was used.\n\n",
			len(report.Conflicts)))
	}
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}

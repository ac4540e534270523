package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/pymoli/internal/model"
)

// MarkdownWriter outputs reports in Markdown format for sharing.
// Demographic views also get a mermaid pie chart.
type MarkdownWriter struct {
	baseWriter
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownTop limits the ranked sections to the first n rows.
// Zero shows every row.
func WithMarkdownTop(n int) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.top = n
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Heroes of Pymoli Purchase Report")
	md.PlainText("")
	for _, src := range report.Sources {
		md.PlainTextf("Source: `%s`", src)
		md.PlainText("")
	}

	for _, s := range buildSections(report, w.top) {
		md.H2(s.title)
		md.PlainText("")
		if len(s.rows) == 0 {
			md.PlainText("No purchases.")
			md.PlainText("")
			continue
		}
		md.Table(markdown.TableSet{
			Header: s.header,
			Rows:   s.rows,
		})
		md.PlainText("")

		switch s.title {
		case "Gender Demographics":
			w.writeGenderChart(md, report.GenderDemographics)
		case "Age Demographics":
			w.writeAgeChart(md, report.AgeDemographics)
		}
	}

	if len(report.Conflicts) > 0 {
		md.Note(fmt.Sprintf("%d screen name(s) appear with more than one age or gender; the first row was used.",
			len(report.Conflicts)))
		md.PlainText("")
	}

	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated %s*", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	return len(md.String()), md.Build()
}

// writeGenderChart writes a mermaid pie chart of players per gender.
func (w *MarkdownWriter) writeGenderChart(md *markdown.Markdown, demographics []model.GenderDemographic) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Players by Gender"),
		piechart.WithShowData(true),
	)
	var shown int
	for _, d := range demographics {
		if d.Players > 0 {
			chart.LabelAndIntValue(d.Gender, uint64(d.Players))
			shown++
		}
	}
	if shown == 0 {
		return
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAgeChart writes a mermaid pie chart of players per age bracket.
// Empty brackets are left out of the chart but stay in the table.
func (w *MarkdownWriter) writeAgeChart(md *markdown.Markdown, demographics []model.AgeDemographic) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Players by Age"),
		piechart.WithShowData(true),
	)
	var shown int
	for _, d := range demographics {
		if d.Players > 0 {
			chart.LabelAndIntValue(d.Bracket.String(), uint64(d.Players))
			shown++
		}
	}
	if shown == 0 {
		return
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

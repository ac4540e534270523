// Package report renders a model.Report for people and tools.
//
// Three writers implement the Writer interface:
//   - SimpleWriter: plain text tables for the terminal
//   - JSONWriter: structured JSON with raw numeric values
//   - MarkdownWriter: Markdown tables and mermaid pie charts
//
// Text and Markdown output share the section builders in sections.go, so
// both formats show the same columns and the same currency and percent
// formatting.
package report

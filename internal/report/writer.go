package report

import (
	"io"

	"github.com/nao1215/pymoli/internal/model"
)

// DefaultTop is the number of spenders and items shown in ranked sections.
const DefaultTop = 5

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer

	// top limits ranked sections. Zero shows every row.
	top int
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output, top: DefaultTop}
}

// limit returns the first top elements of rows, or all of them when top is
// zero or larger than the slice.
func limit[T any](rows []T, top int) []T {
	if top <= 0 || top >= len(rows) {
		return rows
	}
	return rows[:top]
}

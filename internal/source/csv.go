package source

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/nao1215/pymoli/internal/model"
)

// byteOrderMark is stripped from the first header cell.
const byteOrderMark = "\ufeff"

// LoadCSV reads a delimited text file with a header row into a Table.
func LoadCSV(path string, columns Columns) (*model.Table, error) {
	records, err := readCSVFile(path, columns)
	if err != nil {
		return nil, err
	}
	return model.NewTable(records), nil
}

// readCSVFile opens path and parses it. The file is closed on every path out.
func readCSVFile(path string, columns Columns) ([]model.PurchaseRecord, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	records, err := ParseCSV(f, columns)
	if err != nil {
		return nil, withPath(err, path)
	}
	return records, nil
}

// ParseCSV parses comma-delimited purchase rows from r. The first row must be
// a header naming at least the required columns; other columns are ignored.
func ParseCSV(r io.Reader, columns Columns) ([]model.PurchaseRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &SchemaError{Err: ErrMissingHeader}
	}
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	}

	idx, err := indexColumns(header, columns)
	if err != nil {
		return nil, err
	}

	var records []model.PurchaseRecord
	fields := make([]string, len(idx))
	for row := 1; ; row++ {
		line, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Err: err}
		}

		for i, pos := range idx {
			if pos >= len(line) {
				return nil, &SchemaError{Row: row, Column: columns.names()[i], Err: ErrInvalidValue}
			}
			fields[i] = line[pos]
		}

		record, err := parseRecord(fields, columns, row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

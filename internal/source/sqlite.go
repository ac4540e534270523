package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/pymoli/internal/model"
)

// DefaultTable is the SQLite table read when none is configured.
const DefaultTable = "purchases"

// sqliteExtensions are the file extensions treated as SQLite databases.
var sqliteExtensions = map[string]bool{
	".db":      true,
	".sqlite":  true,
	".sqlite3": true,
}

// IsSQLitePath reports whether path names a SQLite database by its extension.
func IsSQLitePath(path string) bool {
	return sqliteExtensions[strings.ToLower(filepath.Ext(path))]
}

// LoadSQLite reads the purchase table of a SQLite database into a Table.
// The database is opened read-only.
func LoadSQLite(ctx context.Context, path, table string, columns Columns) (*model.Table, error) {
	records, err := readSQLite(ctx, path, table, columns)
	if err != nil {
		return nil, err
	}
	return model.NewTable(records), nil
}

// readSQLite queries the required columns of table in rowid order.
func readSQLite(ctx context.Context, path, table string, columns Columns) ([]model.PurchaseRecord, error) {
	// Opening a missing file read-only fails late with an opaque message.
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := checkTable(ctx, db, table, columns); err != nil {
		return nil, withPath(err, path)
	}

	names := columns.names()
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quoteIdent(name)
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", //nolint:gosec // Identifiers are quoted
		strings.Join(quoted, ", "), quoteIdent(table))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer rows.Close()

	var records []model.PurchaseRecord
	values := make([]sql.NullString, len(names))
	dest := make([]any, len(names))
	for i := range values {
		dest[i] = &values[i]
	}
	fields := make([]string, len(names))

	for row := 1; rows.Next(); row++ {
		if err := rows.Scan(dest...); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		for i, v := range values {
			if !v.Valid {
				return nil, &SchemaError{
					Path:   path,
					Row:    row,
					Column: names[i],
					Err:    fmt.Errorf("%w: NULL", ErrInvalidValue),
				}
			}
			fields[i] = v.String
		}

		record, err := parseRecord(fields, columns, row)
		if err != nil {
			return nil, withPath(err, path)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return records, nil
}

// checkTable verifies that table exists and holds every required column.
func checkTable(ctx context.Context, db *sql.DB, table string, columns Columns) error {
	var name string
	err := db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type IN ('table', 'view') AND name = ?", table,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return &SchemaError{Err: fmt.Errorf("%w: %q", ErrMissingTable, table)}
	}
	if err != nil {
		return &LoadError{Err: err}
	}

	rows, err := db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return &LoadError{Err: err}
	}
	defer rows.Close()

	var header []string
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return &LoadError{Err: err}
		}
		header = append(header, col)
	}
	if err := rows.Err(); err != nil {
		return &LoadError{Err: err}
	}

	_, err = indexColumns(header, columns)
	return err
}

// quoteIdent quotes a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

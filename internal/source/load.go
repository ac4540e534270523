package source

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/pymoli/internal/model"
)

// DefaultConcurrency is the number of inputs read at once by Load.
const DefaultConcurrency = 4

// Options configures Load.
type Options struct {
	// Columns maps record fields to input column names.
	Columns Columns

	// Table is the SQLite table holding purchases.
	Table string

	// Concurrency limits how many inputs are read at once.
	Concurrency int

	// Logger receives per-input debug records. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns Options for the storefront export layout.
func DefaultOptions() Options {
	return Options{
		Columns:     DefaultColumns(),
		Table:       DefaultTable,
		Concurrency: DefaultConcurrency,
	}
}

// Load reads every path and concatenates the rows, in argument order, into
// one Table. Paths with a SQLite extension are read as databases, everything
// else as delimited text. The first failing input cancels the others and its
// error is returned.
func Load(ctx context.Context, paths []string, opts Options) (*model.Table, error) {
	if len(paths) == 0 {
		return nil, &LoadError{Err: ErrNoInput}
	}

	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.Table == "" {
		opts.Table = DefaultTable
	}
	opts.Columns = opts.Columns.Merge(DefaultColumns())
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	parts := make([][]model.PurchaseRecord, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			records, err := readPath(ctx, path, opts)
			if err != nil {
				logger.Debug("input failed", "path", path, "error", err)
				return err
			}

			// Each goroutine owns its own slot.
			parts[i] = records
			logger.Debug("input loaded", "path", path, "rows", len(records))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	all := make([]model.PurchaseRecord, 0, total)
	for _, part := range parts {
		all = append(all, part...)
	}

	return model.NewTable(all), nil
}

// readPath dispatches on the input kind.
func readPath(ctx context.Context, path string, opts Options) ([]model.PurchaseRecord, error) {
	if IsSQLitePath(path) {
		return readSQLite(ctx, path, opts.Table, opts.Columns)
	}
	return readCSVFile(path, opts.Columns)
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/pymoli/internal/config"
	applog "github.com/nao1215/pymoli/internal/log"
	"github.com/nao1215/pymoli/internal/model"
	"github.com/nao1215/pymoli/internal/pipeline"
	"github.com/nao1215/pymoli/internal/report"
	"github.com/nao1215/pymoli/internal/source"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [input...]",
		Short: "Print the purchase analysis report",
		Long: `Report loads purchase records and prints nine summary views:

- Player count
- Purchasing totals
- Gender demographics and purchasing by gender
- Age demographics and purchasing by age bracket
- Top spenders, most popular items, most profitable items

Inputs are CSV files with a header row, or SQLite databases (.db, .sqlite,
.sqlite3) holding a purchases table. Several inputs are combined in order.

Examples:
  # Report on the default export
  pymoli report

  # Report on a specific file, showing the top 10 of each ranking
  pymoli report -n 10 data/purchase_data.csv

  # Combine a CSV export and a SQLite database, output JSON
  pymoli report --json old.csv store.db

  # Output Markdown with mermaid pie charts
  pymoli report --markdown > report.md`,
		Args: cobra.ArbitraryArgs,
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pymoli.yaml in current directory, XDG config directory, or home)")
	cmd.Flags().IntP("top", "n", config.DefaultTop,
		"Rows shown in each ranking (0 = all)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().String("table", config.DefaultTable,
		"SQLite table holding purchase rows")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of input files loaded at once")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := applog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runReport(ctx, cfg, cmd.OutOrStdout(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// cobra command flags, in increasing order of precedence. Only flags the
// user set override file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	configPath, err := config.FindConfigFile(cfg.ConfigFilePath)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	}

	if flags.Changed("top") {
		if cfg.Top, err = flags.GetInt("top"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("json") || flags.Changed("markdown") {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("table") {
		if cfg.Table, err = flags.GetString("table"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("concurrency") {
		if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return nil, err
		}
	}

	if len(args) > 0 {
		cfg.Inputs = args
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// sourceOptions translates the configuration into loader options.
func sourceOptions(cfg *config.Config, logger *slog.Logger) source.Options {
	return source.Options{
		Columns: source.Columns{
			PurchaseID: cfg.Columns.PurchaseID,
			ScreenName: cfg.Columns.ScreenName,
			Age:        cfg.Columns.Age,
			Gender:     cfg.Columns.Gender,
			ItemID:     cfg.Columns.ItemID,
			ItemName:   cfg.Columns.ItemName,
			Price:      cfg.Columns.Price,
		},
		Table:       cfg.Table,
		Concurrency: cfg.Concurrency,
		Logger:      logger,
	}
}

// runReport loads the inputs, runs every analysis step and writes the
// report to out.
func runReport(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	table, err := source.Load(ctx, cfg.Inputs, sourceOptions(cfg, logger))
	if err != nil {
		return err
	}
	logger.Debug("purchases loaded", "inputs", len(cfg.Inputs), "rows", table.Len())

	rep := model.NewReport(cfg.Inputs...)
	if conflicts := table.Conflicts(); len(conflicts) > 0 {
		logger.Warn("screen names with conflicting age or gender, first row kept",
			"count", len(conflicts),
			"players", conflicts,
		)
		rep.Conflicts = conflicts
	}

	p := pipeline.DefaultPipeline(table, pipeline.WithLogger(logger))
	if err := p.Execute(ctx, rep); err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	_, err = newWriter(cfg, out).Write(rep)
	return err
}

// newWriter returns the report writer for the configured output format.
func newWriter(cfg *config.Config, out io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out, report.WithMarkdownTop(cfg.Top))
	default:
		return report.NewSimpleWriter(out, report.WithTop(cfg.Top))
	}
}

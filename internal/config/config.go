package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/nao1215/pymoli/internal/source"
)

// Default configuration values.
const (
	// DefaultInputPath is where the storefront export lives in a checkout.
	DefaultInputPath = "Resources/purchase_data.csv"

	// DefaultTop is how many spenders and items the ranked views show.
	DefaultTop = 5

	// DefaultConcurrency is how many input files are read at once.
	DefaultConcurrency = source.DefaultConcurrency

	// DefaultTable is the SQLite table holding purchase rows.
	DefaultTable = source.DefaultTable

	// AppName is the application name used for XDG directory paths.
	AppName = "pymoli"
)

// Columns names the input column that holds each purchase field.
type Columns struct {
	PurchaseID string `yaml:"purchase_id"`
	ScreenName string `yaml:"screen_name"`
	Age        string `yaml:"age"`
	Gender     string `yaml:"gender"`
	ItemID     string `yaml:"item_id"`
	ItemName   string `yaml:"item_name"`
	Price      string `yaml:"price"`
}

// DefaultColumns returns the header names of the storefront export.
func DefaultColumns() Columns {
	return Columns{
		PurchaseID: source.DefaultPurchaseIDColumn,
		ScreenName: source.DefaultScreenNameColumn,
		Age:        source.DefaultAgeColumn,
		Gender:     source.DefaultGenderColumn,
		ItemID:     source.DefaultItemIDColumn,
		ItemName:   source.DefaultItemNameColumn,
		Price:      source.DefaultPriceColumn,
	}
}

// list returns the column names in field order.
func (c Columns) list() []string {
	return []string{c.PurchaseID, c.ScreenName, c.Age, c.Gender, c.ItemID, c.ItemName, c.Price}
}

// Config holds all configuration options for a report run.
// It is populated from defaults, then the config file, then CLI flags, and
// passed through the application rather than kept in global state.
type Config struct {
	// Inputs are the CSV or SQLite files to read, in order.
	Inputs []string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the default locations are searched.
	ConfigFilePath string

	// Top limits the ranked views. Zero shows every row.
	Top int

	// JSONReport enables JSON output instead of text tables.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output instead of text tables.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// Table is the SQLite table read for .db inputs.
	Table string

	// Concurrency limits how many inputs are loaded at once.
	Concurrency int

	// Columns maps purchase fields to input column names.
	Columns Columns

	// Verbose enables debug logging.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Inputs:      []string{DefaultInputPath},
		Top:         DefaultTop,
		Table:       DefaultTable,
		Concurrency: DefaultConcurrency,
		Columns:     DefaultColumns(),
	}
}

// XDGConfigDir returns the XDG config directory for pymoli.
// On Linux: ~/.config/pymoli
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}
	for _, in := range c.Inputs {
		if strings.TrimSpace(in) == "" {
			return ErrNoInput
		}
	}

	if c.Top < 0 {
		return ErrInvalidTop
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	seen := make(map[string]struct{}, 7)
	for _, name := range c.Columns.list() {
		name = strings.TrimSpace(name)
		if name == "" {
			return ErrIncompleteColumns
		}
		if _, dup := seen[name]; dup {
			return ErrIncompleteColumns
		}
		seen[name] = struct{}{}
	}

	return nil
}

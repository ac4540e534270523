package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the
// current and home directories.
const DefaultConfigFile = ".pymoli.yaml"

// xdgConfigFile is the configuration file name inside XDGConfigDir.
const xdgConfigFile = "config.yaml"

// Output formats accepted by the format key.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// File is the YAML configuration file. Unset keys leave the matching
// Config value alone.
type File struct {
	// Input lists default input files.
	Input []string `yaml:"input"`

	// Top limits the ranked views. A pointer so that 0 can be set.
	Top *int `yaml:"top"`

	// Format is one of text, json or markdown.
	Format string `yaml:"format"`

	// Concurrency limits parallel loads.
	Concurrency int `yaml:"concurrency"`

	SQLite struct {
		Table string `yaml:"table"`
	} `yaml:"sqlite"`

	// Columns overrides individual column names.
	Columns Columns `yaml:"columns"`
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// Apply copies every value set in the file onto c.
func (f *File) Apply(c *Config) error {
	if len(f.Input) > 0 {
		c.Inputs = append([]string(nil), f.Input...)
	}
	if f.Top != nil {
		c.Top = *f.Top
	}
	if f.Concurrency != 0 {
		c.Concurrency = f.Concurrency
	}
	if f.SQLite.Table != "" {
		c.Table = f.SQLite.Table
	}

	switch f.Format {
	case "":
	case FormatText:
		c.JSONReport, c.MarkdownReport = false, false
	case FormatJSON:
		c.JSONReport, c.MarkdownReport = true, false
	case FormatMarkdown:
		c.JSONReport, c.MarkdownReport = false, true
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f.Format)
	}

	c.Columns = mergeColumns(f.Columns, c.Columns)
	return nil
}

// mergeColumns returns override with empty names taken from base.
func mergeColumns(override, base Columns) Columns {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Columns{
		PurchaseID: pick(override.PurchaseID, base.PurchaseID),
		ScreenName: pick(override.ScreenName, base.ScreenName),
		Age:        pick(override.Age, base.Age),
		Gender:     pick(override.Gender, base.Gender),
		ItemID:     pick(override.ItemID, base.ItemID),
		ItemName:   pick(override.ItemName, base.ItemName),
		Price:      pick(override.Price, base.Price),
	}
}

// SearchPaths returns the locations checked for a configuration file
// when none is given explicitly:
//  1. .pymoli.yaml in the current directory
//  2. config.yaml in XDGConfigDir
//  3. .pymoli.yaml in the user's home directory
func SearchPaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, DefaultConfigFile))
	}
	paths = append(paths, filepath.Join(XDGConfigDir(), xdgConfigFile))
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, DefaultConfigFile))
	}
	return paths
}

// FindConfigFile returns the configuration file to use.
// An explicit configPath must exist, otherwise ErrConfigNotFound is
// returned. Without one, the first existing entry of SearchPaths wins and
// an empty string means there is no configuration file.
func FindConfigFile(configPath string) (string, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return configPath, nil
	}
	return firstExisting(SearchPaths()), nil
}

// firstExisting returns the first path that names a regular file.
func firstExisting(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

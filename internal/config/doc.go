// Package config provides configuration structures and utilities for pymoli.
// It defines the report options set from CLI flags and the optional YAML
// configuration file that supplies defaults for them.
package config

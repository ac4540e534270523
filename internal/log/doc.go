// Package log builds the application logger on top of log/slog.
//
// Purchase data carries player screen names. The RedactHandler masks
// attributes that hold them, so verbose output can be shared without
// exposing who bought what.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Warn("conflicting player rows", "players", names) // masked
//	slog.SetDefault(logger)
package log

package fiberz

import "log/slog"

// logger is the package-wide logger used by schedulers created without
// WithLogger.
var logger *slog.Logger = slog.Default()

// SetLogger overrides the package logger.
//
// If not set, or set to nil, slog.Default() is used. Schedulers pick the
// logger up when they are created.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

package mediarss

import (
	"go.uber.org/zap"
)

// Options are the options for containers like Index.
// The zero value is valid; missing values are taken from DefaultOptions.
type Options struct {
	// Logger is used instead of one built from LoggingLevel and LogEncoding.
	Logger *zap.Logger
	// "debug", "info", "warn" or "error". Default "info".
	LoggingLevel string
	// "console" or "json". Default "json".
	LogEncoding string
	// Count additions, duplicates and removals. See Index.WriteMetrics.
	Metrics bool
}

// DefaultOptions is an Options object with default values.
var DefaultOptions = Options{
	LoggingLevel: "info",
	LogEncoding:  "json",
}

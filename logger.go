package mediarss

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new logger with sane defaults and the passed level.
// Supported levels are: debug, info, warn, error.
// Supported encodings are: console, json.
// Only logs with that level and above are then logged (e.g. with "info" no debug logs will be logged).
func NewLogger(level, encoding string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("couldn't unmarshal logging level: %w", err)
	}
	if encoding != "console" && encoding != "json" {
		return nil, fmt.Errorf("unknown log encoding %q", encoding)
	}

	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	logConfig.Encoding = encoding
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	logger, err := logConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("couldn't create logger: %w", err)
	}
	return logger, nil
}

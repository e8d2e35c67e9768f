package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelEnv    = "RETIREMENT_LOG_LEVEL"
	EncodingEnv = "RETIREMENT_LOG_ENCODING"
)

// Env returns the value of an environment variable or def when it is unset or blank
func Env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// New builds a zap logger. Empty level or encoding fall back to the environment, then to warn/console.
// Logs go to stderr so report output on stdout stays clean.
func New(level, encoding string) (*zap.Logger, error) {
	if level == "" {
		level = Env(LevelEnv, "warn")
	}
	if encoding == "" {
		encoding = Env(EncodingEnv, "console")
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = encoding
	switch strings.ToLower(level) {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.Development = true
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l, nil
}

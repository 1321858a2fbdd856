package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var root *zap.Logger

func init() {
	root = build()
}

func build() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(strings.ToLower(lvl))); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	l, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than crashing the service
		// over a logging misconfiguration.
		return zap.NewNop()
	}
	return l
}

// ForService returns a sugared logger tagged with the given service name.
// Every log line from one service area carries the same "service" field.
func ForService(name string) *zap.SugaredLogger {
	return root.Sugar().With("service", name)
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = root.Sync()
}

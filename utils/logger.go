package utils

import (
	"log"
	"strings"

	"rentwise/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is shared by the API server, the reminder worker and the dispatcher.
// Callers should go through GetLogger so it is built on first use.
var Logger *zap.Logger

// InitializeLogger builds Logger from the current config. Production gets JSON
// output at info; anything else gets colored console output at debug. A
// LOG_LEVEL setting wins over either default.
func InitializeLogger() {
	var cfg zap.Config
	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(logLevel(config.AppConfig.LogLevel, config.IsProduction()))

	var err error
	Logger, err = cfg.Build(zap.Fields(zap.String("service", "rentwise")))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// logLevel parses override and falls back to the environment default when it
// is empty or unknown.
func logLevel(override string, production bool) zapcore.Level {
	level := zapcore.DebugLevel
	if production {
		level = zapcore.InfoLevel
	}
	if s := strings.TrimSpace(override); s != "" {
		var parsed zapcore.Level
		if err := parsed.UnmarshalText([]byte(s)); err == nil {
			level = parsed
		}
	}
	return level
}

// GetLogger returns Logger, building it if nothing has yet.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

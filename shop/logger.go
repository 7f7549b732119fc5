package shop

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const ErrMsgUnknownLogLevel = "Unknown log level"

// NewLogger builds the process logger. "debug" selects the development
// encoder, every other level uses the production JSON encoder.
func NewLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, NewInvalidArgumentf("%s: %s", ErrMsgUnknownLogLevel, level)
	}

	var cfg zap.Config
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

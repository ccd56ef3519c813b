package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Lg = zap.NewNop()

// InitLogger installs a production logger at the given level. Output goes to
// stderr so it never interleaves with report lines on stdout.
func InitLogger(level string) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return
	}
	Lg = logger
}

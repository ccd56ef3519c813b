package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	InitLogger("debug")
	if !Lg.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected debug to be enabled")
	}

	InitLogger("chatty")
	if Lg.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("unknown level should fall back to warn")
	}
	if !Lg.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("expected warn to be enabled")
	}
}

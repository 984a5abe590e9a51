package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zapcore.DebugLevel)
	log.Debug("extracted", zap.Int("slots", 3))
	_ = log.Sync()

	out := buf.String()
	if !strings.Contains(out, "extracted") || !strings.Contains(out, `"slots": 3`) {
		t.Errorf("unexpected log output: %q", out)
	}
	if !strings.Contains(out, "innostat") {
		t.Errorf("expected logger name in output: %q", out)
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Level(false))
	log.Debug("hidden")
	log.Info("also hidden")
	log.Warn("shown")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug/info should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn should pass: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"DEBUG": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"error": zapcore.ErrorLevel,
		"warn":  zapcore.WarnLevel,
		"bogus": zapcore.WarnLevel,
		"":      zapcore.WarnLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"shouty", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wastenot.log")

	logger, cleanup, err := New(DefaultOptions(path))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("chat reply received", zap.Int("session_id", 42))
	zap.L().Debug("below level")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"chat reply received"`) {
		t.Errorf("log missing message: %s", out)
	}
	if !strings.Contains(out, `"session_id":42`) {
		t.Errorf("log missing field: %s", out)
	}
	if strings.Contains(out, "below level") {
		t.Errorf("debug entry should be filtered at info level: %s", out)
	}
}

func TestNew_EmptyPath(t *testing.T) {
	if _, _, err := New(Options{}); err == nil {
		t.Error("New() expected error for empty path")
	}
}

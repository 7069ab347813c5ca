package logger

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
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFileOutputRespectsLevel(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "pug.log")

	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1}
	if err := InitWithFileConfig("warn", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer func() {
		Log = zap.NewNop()
		Sugar = Log.Sugar()
	}()

	Info("treat collected")
	Warn("obstacle hit", zap.Float64("health", 90))
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "treat collected") {
		t.Error("info entry written at warn level")
	}
	if !strings.Contains(out, "obstacle hit") {
		t.Error("warn entry missing from log file")
	}
	if !strings.Contains(out, "WARN") {
		t.Error("expected plain capital level in file output")
	}
}

func TestNopBeforeInit(t *testing.T) {
	// Must not panic before Init.
	Debug("ignored")
	Named("session").Info("ignored")
}

package utils

import (
	"testing"

	"carhive/config"

	"go.uber.org/zap/zapcore"
)

func TestLogLevelFromConfig(t *testing.T) {
	cases := []struct {
		name string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		if got := logLevel(tc.name); got != tc.want {
			t.Fatalf("logLevel(%q) = %v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestLogLevelFallback(t *testing.T) {
	origEnv := config.AppConfig.Env
	defer func() { config.AppConfig.Env = origEnv }()

	config.AppConfig.Env = "development"
	if got := logLevel("loud"); got != zapcore.DebugLevel {
		t.Fatalf("logLevel fallback in development = %v; want debug", got)
	}

	config.AppConfig.Env = "production"
	if got := logLevel(""); got != zapcore.InfoLevel {
		t.Fatalf("logLevel fallback in production = %v; want info", got)
	}
}

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}

	for _, test := range tests {
		result := test.level.String()
		if result != test.expected {
			t.Errorf("LogLevel(%d).String() = %s, expected %s", test.level, result, test.expected)
		}
	}
}

func TestLogLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{LogLevel(999), slog.LevelInfo}, // Default for unknown
	}

	for _, test := range tests {
		result := test.level.SlogLevel()
		if result != test.expected {
			t.Errorf("LogLevel(%d).SlogLevel() = %v, expected %v", test.level, result, test.expected)
		}
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer

	Init(LevelInfo, &buf)

	if defaultLogger == nil {
		t.Error("Expected defaultLogger to be set after Init")
	}

	Info("test-subsystem", "test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Error("Expected log message to appear in output")
	}
	if !strings.Contains(output, "test-subsystem") {
		t.Error("Expected subsystem to appear in output")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	Init(LevelWarn, &buf)

	Debug("filter-test", "debug message")
	Info("filter-test", "info message")
	Warn("filter-test", "warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("Expected debug message to be filtered out")
	}
	if strings.Contains(output, "info message") {
		t.Error("Expected info message to be filtered out")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Expected warn message to appear in output")
	}
}

func TestErrorIncludesErrAttribute(t *testing.T) {
	var buf bytes.Buffer

	Init(LevelInfo, &buf)

	Error("error-test", errors.New("boom"), "operation failed")

	output := buf.String()
	if !strings.Contains(output, "operation failed") {
		t.Error("Expected error message to appear in output")
	}
	if !strings.Contains(output, "boom") {
		t.Error("Expected wrapped error text to appear in output")
	}
}

func TestMessageFormatting(t *testing.T) {
	var buf bytes.Buffer

	Init(LevelInfo, &buf)

	Info("fmt-test", "fetched %d observations for %s", 42, "FEDFUNDS")

	output := buf.String()
	if !strings.Contains(output, "fetched 42 observations for FEDFUNDS") {
		t.Error("Expected formatted message to appear in output")
	}
}

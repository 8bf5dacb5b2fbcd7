// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandlerWritesToZerolog(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)

	slogger := slog.New(NewSlogHandlerWithLogger(zl))
	slogger.Info("bridge works", "component", "supervisor")

	out := buf.String()
	if !strings.Contains(out, `"message":"bridge works"`) {
		t.Errorf("expected message in zerolog output, got %q", out)
	}
	if !strings.Contains(out, `"component":"supervisor"`) {
		t.Errorf("expected attribute in zerolog output, got %q", out)
	}
}

func TestSlogHandlerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{name: "debug", level: slog.LevelDebug, want: `"level":"debug"`},
		{name: "info", level: slog.LevelInfo, want: `"level":"info"`},
		{name: "warn", level: slog.LevelWarn, want: `"level":"warn"`},
		{name: "error", level: slog.LevelError, want: `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			zl := zerolog.New(&buf).Level(zerolog.TraceLevel)

			handler := NewSlogHandlerWithLogger(zl)
			rec := slog.NewRecord(time.Now(), tt.level, "msg", 0)
			if err := handler.Handle(context.Background(), rec); err != nil {
				t.Fatalf("Handle returned error: %v", err)
			}

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q missing %q", buf.String(), tt.want)
			}
		})
	}
}

func TestSlogHandlerWithAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)

	slogger := slog.New(NewSlogHandlerWithLogger(zl)).
		With("service", "api").
		WithGroup("http")
	slogger.Info("request", "status", int64(200))

	out := buf.String()
	if !strings.Contains(out, `"service":"api"`) {
		t.Errorf("pre-configured attr missing from %q", out)
	}
	if !strings.Contains(out, `"http.status":200`) {
		t.Errorf("grouped attr missing from %q", out)
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  zerolog.Level
	}{
		{name: "below debug maps to trace", level: slog.LevelDebug - 4, want: zerolog.TraceLevel},
		{name: "debug", level: slog.LevelDebug, want: zerolog.DebugLevel},
		{name: "info", level: slog.LevelInfo, want: zerolog.InfoLevel},
		{name: "warn", level: slog.LevelWarn, want: zerolog.WarnLevel},
		{name: "error", level: slog.LevelError, want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slogToZerologLevel(tt.level); got != tt.want {
				t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewSlogLogger(t *testing.T) {
	slogger := NewSlogLogger()
	if slogger == nil {
		t.Fatal("NewSlogLogger returned nil")
	}
	// Must not panic when used.
	slogger.Info("hello")
}

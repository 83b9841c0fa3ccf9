package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"debug": slog.LevelDebug,
		"Trace": LevelTrace,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerFiltersAndLabelsTrace(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("info", &buf)
	log.Debug("hidden")
	log.Info("shown", "rule", "Conway")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatal("debug record should be filtered at info")
	}
	if !strings.Contains(out, "rule=Conway") {
		t.Fatalf("missing attribute in %q", out)
	}

	buf.Reset()
	log = NewLogger("trace", &buf)
	log.Log(context.Background(), LevelTrace, "tick")
	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Fatalf("trace level not labelled: %q", buf.String())
	}
}

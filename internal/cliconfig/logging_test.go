package cliconfig

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, zerolog.WarnLevel)

	l.Info().Msg("hidden")
	l.Warn().Str("unit", "60ms").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "60ms") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestSetLevel(t *testing.T) {
	prev := logger
	defer func() { logger = prev }()

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug) = %v", err)
	}
	if Logger().GetLevel() != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", Logger().GetLevel())
	}
	if err := SetLevel("chatty"); err == nil {
		t.Error("SetLevel(chatty) expected error")
	}
}

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw   string
		level log.Level
		off   bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{" WARN ", log.WarnLevel, false},
		{"warning", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"off", log.FatalLevel, true},
		{"bogus", log.InfoLevel, false},
	}

	for _, tc := range tests {
		level, off := parseLevel(tc.raw)
		if level != tc.level || off != tc.off {
			t.Errorf("parseLevel(%q) = (%v, %v), expected (%v, %v)", tc.raw, level, off, tc.level, tc.off)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogTimestamp, "")

	var buf bytes.Buffer
	l := New(&buf, Options{Prefix: "pacman", Level: "warn"})
	l.Info("hidden")
	l.Warn("shown", "ghost", "blinky")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "blinky") || !strings.Contains(out, "pacman") {
		t.Errorf("warn line missing fields: %q", out)
	}
}

func TestNewLevelFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")

	var buf bytes.Buffer
	l := New(&buf, Options{})
	l.Debug("mode change")
	if !strings.Contains(buf.String(), "mode change") {
		t.Errorf("env level not applied: %q", buf.String())
	}
}

func TestNewOff(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Level: "off"})
	l.Error("dropped")
	if buf.Len() != 0 {
		t.Errorf("off logger wrote %q", buf.String())
	}
}

func TestValidLevel(t *testing.T) {
	for _, ok := range []string{"", "debug", "INFO", "off"} {
		if !ValidLevel(ok) {
			t.Errorf("ValidLevel(%q) = false", ok)
		}
	}
	if ValidLevel("loud") {
		t.Error("ValidLevel(loud) = true")
	}
}

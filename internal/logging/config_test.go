package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigureTestsSetsDebugLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogTimestamp, "")
	t.Setenv(EnvLogNoColor, "")

	ConfigureTests()
	if lvl := zerolog.GlobalLevel(); lvl != zerolog.DebugLevel {
		t.Fatalf("global level = %v, want debug", lvl)
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"trace", zerolog.TraceLevel, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{"info", zerolog.InfoLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"error", zerolog.ErrorLevel, true},
		{"off", zerolog.Disabled, true},
		{"bogus", zerolog.InfoLevel, false},
	}
	for _, tc := range cases {
		got, ok := parseLevel(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseLevel(%q) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseBool(t *testing.T) {
	if v, ok := parseBool("true"); !ok || !v {
		t.Fatalf("parseBool(true) = (%v, %v)", v, ok)
	}
	if _, ok := parseBool(""); ok {
		t.Fatalf("empty string should not parse")
	}
	if _, ok := parseBool("maybe"); ok {
		t.Fatalf("invalid bool should not parse")
	}
}

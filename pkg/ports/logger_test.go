package ports

import "testing"

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"quiet", LevelQuiet},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}
	for _, c := range cases {
		if got := ParseLogLevel(c.in); got != c.want {
			t.Errorf("ParseLogLevel(%q): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestLogLevel_String(t *testing.T) {
	cases := []struct {
		in   LogLevel
		want string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelQuiet, "quiet"},
		{LogLevel(42), "unknown"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("%d.String(): expected %q, got %q", int(c.in), c.want, got)
		}
	}
}

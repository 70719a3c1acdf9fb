package teapot

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// withLogger installs a text logger at level for the duration of the test
func withLogger(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestLogger_DefaultSilent(t *testing.T) {
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
		if Logger().Enabled(context.Background(), level) {
			t.Errorf("Default logger is enabled for %v", level)
		}
	}
}

func TestLogger_Levels(t *testing.T) {
	in := testDocument(testBlock(1), testUnbalancedBlock, testBlock(2))

	tests := []struct {
		name      string
		level     slog.Level
		wantDebug int
		wantWarn  int
	}{
		{"debug", slog.LevelDebug, 2, 1},
		{"warn", slog.LevelWarn, 0, 1},
		{"error", slog.LevelError, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := withLogger(t, tt.level)
			Parse(in)

			out := buf.String()
			if n := strings.Count(out, "parsed surface block"); n != tt.wantDebug {
				t.Errorf("Got %d parsed-block lines, want %d:\n%s", n, tt.wantDebug, out)
			}
			if n := strings.Count(out, "dropping surface block"); n != tt.wantWarn {
				t.Errorf("Got %d dropped-block lines, want %d:\n%s", n, tt.wantWarn, out)
			}
		})
	}
}

func TestLogger_DroppedBlockAttributes(t *testing.T) {
	buf := withLogger(t, slog.LevelWarn)
	Parse("# header\n" + testDocument(testBlock(1), testUnbalancedBlock))

	out := buf.String()
	for _, want := range []string{"level=WARN", "index=1", "line=9", "unbalanced delimiters", "excerpt="} {
		if !strings.Contains(out, want) {
			t.Errorf("Warning is missing %s:\n%s", want, out)
		}
	}
}

func TestSetLogger_NilRestoresSilent(t *testing.T) {
	buf := withLogger(t, slog.LevelDebug)
	SetLogger(nil)
	Parse(testDocument(testUnbalancedBlock))

	if buf.Len() != 0 {
		t.Errorf("Got output after SetLogger(nil): %s", buf.String())
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

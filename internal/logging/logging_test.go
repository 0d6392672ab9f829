package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{" warning ", slog.LevelWarn},
		{"error", slog.LevelError},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, parseLevel(tc.in))
		})
	}
}

func TestNewText(t *testing.T) {
	tt := assert.WrapTB(t)
	var buf bytes.Buffer
	log := New(Config{Level: "warn"}, &buf)

	log.Info("hidden")
	tt.MustEqual("", buf.String())

	log.Warn("shown", "k", 1)
	tt.MustAssert(strings.Contains(buf.String(), "msg=shown"), buf.String())
	tt.MustAssert(strings.Contains(buf.String(), "k=1"), buf.String())
}

func TestNewJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json"}, &buf)

	log.Debug("hello", "bits", 1024)

	var rec map[string]interface{}
	tt.MustOK(json.Unmarshal(buf.Bytes(), &rec))
	tt.MustEqual("hello", rec["msg"])
	tt.MustEqual("DEBUG", rec["level"])
	tt.MustEqual(float64(1024), rec["bits"])
}

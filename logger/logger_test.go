package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := New("restaurant-desk", &buf, "debug")

	l.Info("order_placed", "sess-1", "order placed", slog.Int("lines", 2))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "order placed", rec["msg"])
	assert.Equal(t, "restaurant-desk", rec["service"])
	assert.Equal(t, "order_placed", rec["action"])
	assert.Equal(t, "sess-1", rec["session_id"])
	assert.EqualValues(t, 2, rec["lines"])
}

func TestLogger_ErrorGroup(t *testing.T) {
	var buf bytes.Buffer
	l := New("svc", &buf, "debug")

	l.Error("auth_failed", "", "admin login rejected", errors.New("authentication failed"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	group, ok := rec["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "authentication failed", group["msg"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New("svc", &buf, "warn")

	l.Info("a", "", "dropped")
	l.Debug("b", "", "dropped")
	assert.Zero(t, buf.Len())

	l.Warn("c", "", "kept")
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelWarn, ParseLevel("nonsense"))
}

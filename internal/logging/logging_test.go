// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewLeveled_Text(t *testing.T) {
	var buf bytes.Buffer
	log := NewLeveled(ParseLevel("warn"), "text", &buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")
	require.Contains(t, buf.String(), "k=1")
}

func TestNewLeveled_JSON(t *testing.T) {
	var buf bytes.Buffer
	NewLeveled(ParseLevel("debug"), "json", &buf).Debug("derived", "nets", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "derived", rec["msg"])
	require.Equal(t, "DEBUG", rec["level"])
	require.EqualValues(t, 2, rec["nets"])
}

func TestDiscard(t *testing.T) {
	require.False(t, Discard().Enabled(t.Context(), slog.LevelError))
}

func TestNewLeveled_LevelVar(t *testing.T) {
	var buf bytes.Buffer
	lv := new(slog.LevelVar)
	lv.Set(slog.LevelError)
	log := NewLeveled(lv, "text", &buf)
	log.Info("before")
	lv.Set(slog.LevelInfo)
	log.Info("after")
	require.NotContains(t, buf.String(), "before")
	require.Contains(t, buf.String(), "after")
}

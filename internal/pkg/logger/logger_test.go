package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_JSONOutputAndLevel(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("hidden")
	Warn().Str("netID", "abc123").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"netID":"abc123"`)
	assert.Contains(t, out, `"message":"visible"`)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestConfigure_WritesRotatingFile(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	path := filepath.Join(t.TempDir(), "logs", "enrollment.log")
	var buf bytes.Buffer
	Configure(Config{
		Level:  InfoLevel,
		Output: &buf,
		File:   FileConfig{Path: path, MaxSizeMB: 1},
	})

	Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, buf.String(), "to file")
}

func TestConfigure_UnwritableLogDirFallsBackToConsole(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	var buf bytes.Buffer
	Configure(Config{
		Level:  InfoLevel,
		Output: &buf,
		File:   FileConfig{Path: filepath.Join(blocker, "logs", "enrollment.log")},
	})
	Info().Msg("still logging")

	out := buf.String()
	assert.Contains(t, out, "Failed to prepare log directory")
	assert.Contains(t, out, "still logging")
	assert.NoFileExists(t, filepath.Join(blocker, "logs", "enrollment.log"))
}

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel("chatty"))
	assert.Equal(t, zerolog.DebugLevel, parseLevel(DebugLevel))
}

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{10, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetup_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(0, &buf, true)
	defer zerolog.SetGlobalLevel(zerolog.WarnLevel)

	logger := Get("test")
	logger.Info().Msg("hidden message")
	logger.Warn().Msg("visible message")

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "visible message")
	assert.Contains(t, out, "component=test")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	Setup(2, &buf, true)
	defer zerolog.SetGlobalLevel(zerolog.WarnLevel)

	done := LogOperationStart(Get("ops"), "render")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "operation=render")
}

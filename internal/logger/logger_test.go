package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Str("key", "value").Msg("kept")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "value", line["key"])
	assert.Equal(t, "inventory-catalog", line["service"])
}

func TestNewWithWriter_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "loud")

	log.Debug().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Info().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func keepTimeFieldFormat(t *testing.T) {
	t.Helper()
	prev := zerolog.TimeFieldFormat
	t.Cleanup(func() { zerolog.TimeFieldFormat = prev })
}

func TestNewWithWriter_LeavesGlobalsAlone(t *testing.T) {
	keepTimeFieldFormat(t)
	zerolog.TimeFieldFormat = time.Kitchen

	var buf bytes.Buffer
	NewWithWriter(&buf, "info")

	assert.Equal(t, time.Kitchen, zerolog.TimeFieldFormat)
}

func TestNew_SetsTimeFieldFormat(t *testing.T) {
	keepTimeFieldFormat(t)
	zerolog.TimeFieldFormat = time.Kitchen

	New("info", "production")

	assert.Equal(t, time.RFC3339Nano, zerolog.TimeFieldFormat)
}

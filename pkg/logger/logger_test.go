package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONConCamposFijos(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Env: "production", Level: "debug", DeviceID: "tablet-07"})

	sub := l.Component("submitter")
	sub.Info().Int("retirados", 2).Msg("ciclo de envío")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "tablet-07", line["device"])
	assert.Equal(t, "submitter", line["component"])
	assert.Equal(t, float64(2), line["retirados"])
	assert.Equal(t, "ciclo de envío", line["message"])
}

func TestLogger_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Level: "warn"})

	l.Info().Msg("no debe aparecer")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("sí aparece")
	assert.NotZero(t, buf.Len())
}

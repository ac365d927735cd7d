package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Out: &buf})

	store := l.Component("store")
	store.Info().Int("total", 3).Msg("colección cargada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "store", line["component"])
	assert.Equal(t, "colección cargada", line["message"])
	assert.EqualValues(t, 3, line["total"])
}

func TestNew_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("no debe salir")
	assert.Empty(t, buf.String())

	l.Warn().Msg("sí debe salir")
	assert.Contains(t, buf.String(), "sí debe salir")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}

func TestNew_AgregaCampoApp(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Out: &buf, App: "ancla-y-sedal"})

	l.Info().Msg("arranque")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ancla-y-sedal", line["app"])
	assert.Equal(t, "info", line["level"])
}

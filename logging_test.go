package landing

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("warn", "json", &buf)

	l.Info().Msg("dropped")
	l.Warn().Str(FieldFunc, "test").Msg("kept")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "warn", ev["level"])
	assert.Equal(t, "test", ev[FieldFunc])
	assert.Equal(t, "kept", ev["message"])
}

func TestNewLoggerBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("nope", "json", &buf)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())

	l = NewLogger("", "json", &buf)
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestRequestEventLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("debug", "json", &buf)

	tests := []struct {
		status int
		err    error
		level  string
	}{
		{200, nil, "info"},
		{304, nil, "info"},
		{404, nil, "warn"},
		{500, errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		buf.Reset()
		requestEvent(&l, tt.status, tt.err).Msg("")
		var ev map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
		assert.Equal(t, tt.level, ev["level"], "status %d", tt.status)
		if tt.err != nil {
			assert.Equal(t, "boom", ev["error"])
		}
	}
}

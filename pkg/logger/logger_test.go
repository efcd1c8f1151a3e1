package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	buf := &bytes.Buffer{}
	log.Logger = zerolog.New(buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	return buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestError_IncludesErr(t *testing.T) {
	buf := captureLogs(t)

	Error("Seed failed", errors.New("disk full"))

	entry := lastEntry(t, buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "Seed failed", entry["message"])
	assert.Equal(t, "disk full", entry["error"])
}

func TestDebug_RespectsGlobalLevel(t *testing.T) {
	buf := captureLogs(t)

	Debug("employee cache hit: employee:1")
	assert.Equal(t, "debug", lastEntry(t, buf)["level"])

	buf.Reset()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	Debug("dropped")
	assert.Zero(t, buf.Len())
}

func TestInfoAndWarn_Fields(t *testing.T) {
	buf := captureLogs(t)

	Warn("employee cache flush failed", map[string]interface{}{"pattern": "employee:*"})
	entry := lastEntry(t, buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "employee:*", entry["pattern"])

	Info("Seeded employees", map[string]interface{}{"count": 3})
	assert.EqualValues(t, 3, lastEntry(t, buf)["count"])
}

func TestCtx_FallsBackToGlobal(t *testing.T) {
	buf := captureLogs(t)

	Ctx(context.Background()).Info().Msg("no request")
	assert.Equal(t, "no request", lastEntry(t, buf)["message"])

	ctx := WithRequestID(context.Background(), "req-1")
	Ctx(ctx).Info().Msg("with request")
	assert.Equal(t, "req-1", lastEntry(t, buf)["request_id"])
}

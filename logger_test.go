package blake2simd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(t *testing.T, level slog.Level) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})), &buf
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestLogDispatch(t *testing.T) {
	l, buf := captureLogger(t, slog.LevelInfo)

	l.WithFamily("blake2b").LogDispatch("avx2", "portable", []int{4, 2}, true)

	records := decodeRecords(t, buf)
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "blake2 dispatch selected", rec["msg"])
	assert.Equal(t, "blake2b", rec["family"])
	assert.Equal(t, "avx2", rec["isa"])
	assert.Equal(t, "portable", rec["single"])
	assert.Equal(t, []any{float64(4), float64(2)}, rec["lanes"])
	assert.Equal(t, true, rec["overridden"])
}

func TestDebugRecordsRespectLevel(t *testing.T) {
	info, infoBuf := captureLogger(t, slog.LevelInfo)
	assert.False(t, info.DebugEnabled())
	info.LogBatch(10, 2, 2, 0)
	info.LogTree(700, 7, 100)
	assert.Empty(t, infoBuf.String())

	debug, debugBuf := captureLogger(t, slog.LevelDebug)
	assert.True(t, debug.DebugEnabled())
	debug.WithFamily("blake2s").LogBatch(10, 2, 2, 0)
	debug.WithFamily("blake2s").LogTree(700, 7, 100)

	records := decodeRecords(t, debugBuf)
	require.Len(t, records, 2)
	assert.Equal(t, "hash many planned", records[0]["msg"])
	assert.Equal(t, "blake2s", records[0]["family"])
	assert.Equal(t, float64(10), records[0]["jobs"])
	assert.Equal(t, float64(2), records[0]["cohorts"])
	assert.Equal(t, "tree hash completed", records[1]["msg"])
	assert.Equal(t, float64(7), records[1]["leaves"])
	assert.Equal(t, float64(100), records[1]["leaf_length"])
}

func TestWithFamily(t *testing.T) {
	l, buf := captureLogger(t, slog.LevelInfo)

	l.WithFamily("blake2s").Info("hello")

	records := decodeRecords(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "blake2s", records[0]["family"])
}

func TestSetLogger(t *testing.T) {
	prev := DefaultLogger()
	t.Cleanup(func() { SetLogger(prev) })

	l, _ := captureLogger(t, slog.LevelDebug)
	SetLogger(l)
	assert.Same(t, l, DefaultLogger())

	SetLogger(nil)
	require.NotNil(t, DefaultLogger())
	assert.False(t, DefaultLogger().DebugEnabled())
	assert.False(t, DefaultLogger().Enabled(t.Context(), slog.LevelError))
}

func TestLoggerConstructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.True(t, NewJSONLogger(slog.LevelDebug).DebugEnabled())
	assert.False(t, NewTextLogger(slog.LevelWarn).DebugEnabled())
	assert.False(t, NoopLogger().Enabled(t.Context(), slog.LevelError))
}

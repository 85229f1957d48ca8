package nearpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	t.Run("JSONSearch", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewFormatLogger(&buf, "json", slog.LevelDebug).WithPoints(5)

		l.LogSearch(context.Background(), 5, Result{Index: 2, Dist2: 4}, time.Millisecond, nil)

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "search completed", rec["msg"])
		assert.Equal(t, float64(5), rec["points"])
		assert.Equal(t, float64(2), rec["index"])
		assert.Equal(t, float64(4), rec["dist2"])
	})

	t.Run("TextError", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewFormatLogger(&buf, "text", slog.LevelInfo)

		l.LogSearch(context.Background(), 5, Result{}, 0, errors.New("boom"))
		assert.Contains(t, buf.String(), "search failed")
		assert.Contains(t, buf.String(), "error=boom")
	})

	t.Run("LevelFilters", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewFormatLogger(&buf, "text", slog.LevelInfo)

		l.LogSearch(context.Background(), 5, Result{}, 0, nil)
		assert.Empty(t, buf.String())

		l.LogRun(context.Background(), 10, time.Second, 1.5)
		assert.Contains(t, buf.String(), "benchmark completed")
	})

	t.Run("Noop", func(t *testing.T) {
		assert.False(t, NoopLogger().Enabled(context.Background(), slog.LevelError))
	})
}

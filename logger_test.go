package shadertrack

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(nil)
	l := Logger()
	assert.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	logs := captureLogs(t, slog.LevelInfo)
	Logger().Info("hello", "n", 1)
	Logger().Debug("hidden")
	assert.Contains(t, logs.String(), "hello")
	assert.NotContains(t, logs.String(), "hidden")

	SetLogger(nil)
	Logger().Info("after reset")
	assert.NotContains(t, logs.String(), "after reset")
}

func TestNopHandler(t *testing.T) {
	var h slog.Handler = nopHandler{}
	assert.Equal(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.Int("a", 1)}))
	assert.Equal(t, nopHandler{}, h.WithGroup("g"))
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
}

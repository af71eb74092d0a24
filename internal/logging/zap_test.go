package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObserved(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	tests := []struct {
		level zapcore.Level
		msg   string
		key   string
		val   int64
	}{
		{zapcore.DebugLevel, "dbg", "a", 1},
		{zapcore.InfoLevel, "inf", "b", 2},
		{zapcore.WarnLevel, "wrn", "c", 3},
		{zapcore.ErrorLevel, "err", "d", 4},
	}
	for i, tc := range tests {
		assert.Equal(t, tc.level, entries[i].Level)
		assert.Equal(t, tc.msg, entries[i].Message)
		assert.EqualValues(t, tc.val, entries[i].ContextMap()[tc.key])
	}
}

func TestZapLogger_With(t *testing.T) {
	log, logs := newObserved(t)

	log.With("screen", "admin-stores").Info(context.Background(), "fetched", "count", 3)

	entries := logs.FilterMessage("fetched").AllUntimed()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "admin-stores", fields["screen"])
	assert.EqualValues(t, 3, fields["count"])
}

func TestNew(t *testing.T) {
	l, err := New("warn")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = New("loud")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error(context.Background(), "dropped") })
}

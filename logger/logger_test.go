package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplaceRoutesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))
	defer restore()

	Infof("generated script for %s", "coffee shop")
	With("attempt", 2).Warn("attempt failed")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "generated script for coffee shop", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(2), entries[1].ContextMap()["attempt"])
}

func TestReplaceRestoresPrevious(t *testing.T) {
	first, firstLogs := observer.New(zapcore.InfoLevel)
	restoreFirst := Replace(zap.New(first))
	defer restoreFirst()

	second, secondLogs := observer.New(zapcore.InfoLevel)
	restoreSecond := Replace(zap.New(second))
	Info("to second")
	restoreSecond()
	Info("to first")

	assert.Equal(t, 1, secondLogs.Len())
	assert.Equal(t, 1, firstLogs.Len())
	assert.Equal(t, "to first", firstLogs.All()[0].Message)
}

func TestCallerIsCallSite(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer Replace(zap.New(core, zap.AddCaller()))()

	Infof("from helper")
	Sugar().Infow("from sugar")
	With("attempt", 1).Warnw("from with")

	entries := logs.All()
	require.Len(t, entries, 3)
	for _, entry := range entries {
		require.True(t, entry.Caller.Defined, entry.Message)
		assert.Equal(t, "logger_test.go", filepath.Base(entry.Caller.File), entry.Message)
	}
}

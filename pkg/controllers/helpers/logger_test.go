package helpers

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/asiyani/lazyftp/pkg/models"
)

func TestDiagnosticSink_Record(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := NewDiagnosticSink(zap.New(core))

	sink.Record("list connections", errors.New("status 500"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "diagnostics", entries[0].LoggerName)

	fields := entries[0].ContextMap()
	assert.Equal(t, "list connections", fields["op"])
	assert.Equal(t, "status 500", fields["error"])
}

func TestNewLogger_LevelFromConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.log")

	logger := NewLogger(models.LogConfig{File: file})
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	debugLogger := NewLogger(models.LogConfig{File: file, Debug: true})
	assert.True(t, debugLogger.Core().Enabled(zapcore.DebugLevel))
}

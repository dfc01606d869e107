package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrapperForwardsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).WithFields(map[string]interface{}{"component": "authoring"})

	log.Info("question added", map[string]interface{}{"id": "question_1"})
	log.WithError(errors.New("boom")).Error("save failed", nil)

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "question added", entries[0].Message)
		assert.Equal(t, "authoring", entries[0].ContextMap()["component"])
		assert.Equal(t, "question_1", entries[0].ContextMap()["id"])
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
		assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	}
}

func TestNewLevels(t *testing.T) {
	for level, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"bogus": zapcore.InfoLevel,
	} {
		l, err := New(level, "console")
		assert.NoError(t, err)
		assert.True(t, l.Core().Enabled(want), level)
		if want > zapcore.DebugLevel {
			assert.False(t, l.Core().Enabled(want-1), level)
		}
	}
}

func TestNoOpAndTestLoggers(t *testing.T) {
	NewNoOpLogger().Info("ignored", map[string]interface{}{"k": 1})
	NewTestLogger(t).Debug("visible in -v output", nil)
}

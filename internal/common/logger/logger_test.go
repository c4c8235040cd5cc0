package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"nonsense", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := New(tt.level, "json")
			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestZapWrapper_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).
		With(map[string]interface{}{"intent": "CarCheck"}).
		WithError(errors.New("boom"))

	log.Info("processing intent", map[string]interface{}{"sessionId": "s-1"})
	log.Warn("upstream failed", map[string]interface{}{"cause": errors.New("timeout")})

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "CarCheck", ctx["intent"])
		assert.Equal(t, "s-1", ctx["sessionId"])
		assert.Equal(t, "boom", ctx["error"])
		assert.Equal(t, "timeout", entries[1].ContextMap()["cause"])
	}
}

func TestNoOpAndTestLoggers(t *testing.T) {
	NewNoOpLogger().Error("ignored", nil)
	NewTestLogger(t).Debug("visible in -v", map[string]interface{}{"k": 1})
}

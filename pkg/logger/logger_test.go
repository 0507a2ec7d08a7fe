package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/drivahub/drivahub/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name          string
		lvl           string
		expectedError bool
		enabled       zapcore.Level
		disabled      zapcore.Level
	}{
		{name: "Debug", lvl: "debug", enabled: zapcore.DebugLevel, disabled: zapcore.DebugLevel - 1},
		{name: "Info", lvl: "info", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel},
		{name: "Warn in upper case", lvl: "WARN", enabled: zapcore.WarnLevel, disabled: zapcore.InfoLevel},
		{name: "Error", lvl: "error", enabled: zapcore.ErrorLevel, disabled: zapcore.WarnLevel},
		{name: "Unsupported level", lvl: "verbose", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.lvl})

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.enabled))
			assert.False(t, zap.L().Core().Enabled(tt.disabled))
		})
	}
}

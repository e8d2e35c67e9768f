package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected zap.AtomicLevel
	}{
		{"debug", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"info", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"WARN", zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"error", zap.NewAtomicLevelAt(zap.ErrorLevel)},
		{"chatty", zap.NewAtomicLevelAt(zap.InfoLevel)},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, err := New(tt.level, "json")
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.expected.Level()))
			assert.False(t, l.Core().Enabled(tt.expected.Level()-1))
		})
	}
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv(LevelEnv, "error")
	t.Setenv(EncodingEnv, "json")

	l, err := New("", "")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.WarnLevel))
	assert.True(t, l.Core().Enabled(zap.ErrorLevel))
}

func TestNewRejectsUnknownEncoding(t *testing.T) {
	_, err := New("info", "xml")
	assert.Error(t, err)
}

func TestEnv(t *testing.T) {
	t.Setenv("RETIREMENT_TEST_ENV", "  value ")
	assert.Equal(t, "value", Env("RETIREMENT_TEST_ENV", "default"))
	assert.Equal(t, "default", Env("RETIREMENT_TEST_ENV_UNSET", "default"))
}

package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/Astemirdum/library-borrowing/borrowing/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig_OptionsSurviveDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	t.Setenv("HTTP_WRITE", "")
	require.NoError(t, os.Unsetenv("HTTP_WRITE"))

	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, "test-secret", cfg.Auth.Secret)
	require.Equal(t, "0 9 * * *", cfg.Overdue.Schedule)
	require.Equal(t, 24*time.Hour, cfg.Auth.TTL)
}

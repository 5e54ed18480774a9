package config

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.Server.Port)
	require.Equal(t, 8081, cfg.Server.HealthPort)
	require.True(t, cfg.Transports.HTTP.Enabled)
	require.False(t, cfg.Transports.GRPC.Enabled)
	require.Equal(t, "piper", cfg.TTS.Backend)
	require.Equal(t, 30*time.Second, cfg.TTS.Engine.Timeout)
	require.Equal(t, 100*time.Millisecond, cfg.TTS.Engine.SettleDelay)

	if runtime.GOOS == "windows" {
		require.Equal(t, "C:/Users/User/Documents/piper/piper.exe", cfg.TTS.Engine.PiperPath)
	} else {
		require.Equal(t, "./piper", cfg.TTS.Engine.PiperPath)
		require.Equal(t, "./exported_model.onnx", cfg.TTS.Engine.ModelPath)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SAYD_SERVER_PORT", "9100")
	t.Setenv("SAYD_TTS_BACKEND", "mock")
	t.Setenv("SAYD_TTS_ENGINE_PIPER_PATH", "/opt/piper/piper")
	t.Setenv("SAYD_TTS_ENGINE_TIMEOUT", "10s")
	t.Setenv("SAYD_LOGGING_FORMAT", "text")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "mock", cfg.TTS.Backend)
	require.Equal(t, "/opt/piper/piper", cfg.TTS.Engine.PiperPath)
	require.Equal(t, 10*time.Second, cfg.TTS.Engine.Timeout)
	require.Equal(t, "text", cfg.Logging.Format)
}

func TestPlainPortEnv(t *testing.T) {
	// Deployment platforms inject the serving port as plain PORT.
	t.Setenv("PORT", "7000")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 7000, cfg.Server.Port)
}

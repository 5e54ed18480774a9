// Package config handles loading and validating the sayd configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the sayd daemon.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Transports TransportsConfig `mapstructure:"transports"`
	TTS        TTSConfig        `mapstructure:"tts"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig holds the listening ports.
type ServerConfig struct {
	// Port is the main serving port. Overridable with the plain PORT
	// environment variable (default 8000) for PaaS-style deployments.
	Port int `mapstructure:"port"`

	// HealthPort is the liveness endpoint port.
	HealthPort int `mapstructure:"health_port"`
}

// TransportsConfig holds the configuration for each transport layer.
type TransportsConfig struct {
	HTTP HTTPConfig `mapstructure:"http"`
	GRPC GRPCConfig `mapstructure:"grpc"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// GRPCConfig configures the gRPC transport.
type GRPCConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// TTSConfig selects and configures the text-to-speech backend.
type TTSConfig struct {
	Backend string       `mapstructure:"backend"` // "piper" or "mock"
	Engine  EngineConfig `mapstructure:"engine"`
}

// EngineConfig describes the external Piper engine environment. It is
// resolved once at startup and treated as immutable afterwards.
type EngineConfig struct {
	// PiperPath is the engine executable location.
	PiperPath string `mapstructure:"piper_path"`

	// ModelPath is the voice model location.
	ModelPath string `mapstructure:"model_path"`

	// Timeout is the hard wall-clock budget for one engine invocation.
	Timeout time.Duration `mapstructure:"timeout"`

	// SettleDelay is an optional pause between artifact verification
	// and reading it back, for hosts with laggy file visibility.
	// Zero disables it.
	SettleDelay time.Duration `mapstructure:"settle_delay"`

	// WorkDir is where output artifacts are written. Empty means the
	// process working directory.
	WorkDir string `mapstructure:"work_dir"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./sayd.yaml, ./configs/sayd.yaml, /etc/sayd/sayd.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults. Engine paths branch on the host platform: local
	// Windows development vs a deployed host with piper alongside
	// the binary.
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("transports.http.enabled", true)
	v.SetDefault("transports.grpc.enabled", false)
	v.SetDefault("transports.grpc.port", 50051)
	v.SetDefault("tts.backend", "piper")
	if runtime.GOOS == "windows" {
		v.SetDefault("tts.engine.piper_path", "C:/Users/User/Documents/piper/piper.exe")
		v.SetDefault("tts.engine.model_path", "C:/Users/User/Documents/piper/exported_model.onnx")
	} else {
		v.SetDefault("tts.engine.piper_path", "./piper")
		v.SetDefault("tts.engine.model_path", "./exported_model.onnx")
	}
	v.SetDefault("tts.engine.timeout", "30s")
	v.SetDefault("tts.engine.settle_delay", "100ms")
	v.SetDefault("tts.engine.work_dir", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("sayd")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/sayd")
	}

	// Environment variables: SAYD_SERVER_PORT, SAYD_TTS_BACKEND, etc.
	// The serving port additionally honors plain PORT.
	v.SetEnvPrefix("SAYD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", "SAYD_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("binding PORT: %w", err)
	}

	// Read config file (optional — env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// Sayd is a text-to-speech daemon that turns submitted text into WAV
// audio by invoking the Piper engine as a one-shot subprocess.
//
// Usage:
//
//	sayd [flags]
//	sayd --config /path/to/sayd.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/nadzzz/sayd/internal/config"
	"github.com/nadzzz/sayd/internal/dispatch"
	"github.com/nadzzz/sayd/internal/health"
	"github.com/nadzzz/sayd/internal/transport"
	grpctransport "github.com/nadzzz/sayd/internal/transport/grpc"
	httptransport "github.com/nadzzz/sayd/internal/transport/http"
	"github.com/nadzzz/sayd/internal/tts"
	"github.com/nadzzz/sayd/internal/tts/piper"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/sayd.local.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("sayd %s\n", version)
		os.Exit(0)
	}

	// Load configuration.
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging.
	config.SetupLogging(cfg.Logging)
	slog.Info("sayd starting", "version", version)

	// Create root context with signal handling for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize the synthesis backend. The engine environment is
	// resolved here, once, and stays immutable for the process lifetime.
	var synth tts.Synthesizer
	switch cfg.TTS.Backend {
	case "piper":
		synth = piper.New(cfg.TTS.Engine)
		slog.Info("using piper synthesizer",
			"piper_path", cfg.TTS.Engine.PiperPath,
			"model_path", cfg.TTS.Engine.ModelPath,
			"timeout", cfg.TTS.Engine.Timeout)
	case "mock":
		synth = tts.NewMock()
		slog.Info("using mock synthesizer")
	default:
		slog.Error("unknown tts backend", "backend", cfg.TTS.Backend)
		os.Exit(1)
	}
	defer synth.Close()

	// Create the dispatcher.
	dispatcher := dispatch.New(synth)

	// Initialize enabled transports.
	var transports []transport.Transport

	if cfg.Transports.HTTP.Enabled {
		transports = append(transports, httptransport.New(cfg.Server.Port, dispatcher.Environment))
	}
	if cfg.Transports.GRPC.Enabled {
		transports = append(transports, grpctransport.New(cfg.Transports.GRPC.Port))
	}

	if len(transports) == 0 {
		slog.Error("no transports enabled — enable at least one in config")
		os.Exit(1)
	}

	// Start health check server.
	healthServer := health.New(cfg.Server.HealthPort)
	go func() {
		if err := healthServer.ListenAndServe(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	// Start all transports.
	var wg sync.WaitGroup
	for _, t := range transports {
		wg.Add(1)
		go func(t transport.Transport) {
			defer wg.Done()
			slog.Info("starting transport", "name", t.Name())
			if err := t.Listen(ctx, dispatcher.Handle); err != nil {
				slog.Error("transport failed", "name", t.Name(), "error", err)
			}
		}(t)
	}

	// Mark as ready once all transports are started.
	healthServer.SetReady(true)
	slog.Info("sayd ready",
		"port", cfg.Server.Port,
		"health_port", cfg.Server.HealthPort)

	// Block until shutdown signal.
	<-ctx.Done()
	slog.Info("shutdown signal received, draining...")

	// Close all transports gracefully.
	for _, t := range transports {
		if err := t.Close(); err != nil {
			slog.Error("transport close error", "name", t.Name(), "error", err)
		}
	}

	wg.Wait()
	slog.Info("sayd stopped")
}

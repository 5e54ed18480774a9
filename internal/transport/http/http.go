// Package http implements the HTTP transport for sayd.
//
// This transport exposes the public REST surface: an informational
// root, an engine-environment health report, and the synthesize
// endpoint that returns the generated WAV as an attachment.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/nadzzz/sayd/docs"
	"github.com/nadzzz/sayd/internal/message"
	"github.com/nadzzz/sayd/internal/transport"
	"github.com/nadzzz/sayd/internal/tts"
)

// Transport implements transport.Transport over HTTP.
type Transport struct {
	port        int
	environment transport.EnvironmentFunc
	server      *http.Server
}

// New creates a new HTTP transport on the given port. environment
// backs the GET /health report.
func New(port int, environment transport.EnvironmentFunc) *Transport {
	return &Transport{port: port, environment: environment}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "http" }

// routes builds the request mux for the public surface.
func (t *Transport) routes(handler transport.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", t.handleRoot)
	mux.HandleFunc("GET /health", t.handleHealth)
	mux.HandleFunc("POST /synthesize", func(w http.ResponseWriter, r *http.Request) {
		t.handleSynthesize(w, r, handler)
	})

	// Swagger UI — serves the generated OpenAPI docs.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return mux
}

// Listen starts the HTTP server and routes incoming requests to the handler.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	mux := t.routes(handler)

	t.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", t.port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("http transport listening", "port", t.port)

	go func() {
		<-ctx.Done()
		slog.Info("http transport shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = t.server.Shutdown(shutdownCtx)
	}()

	if err := t.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

// handleRoot serves the informational landing response.
//
// @Summary     Service information
// @Description Returns a greeting, the docs location, the host platform, and the endpoint map.
// @Tags        info
// @Produce     json
// @Success     200  {object}  map[string]any
// @Router      / [get]
func (t *Transport) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "🎤 Piper TTS API is running!",
		"docs":     "/swagger/index.html",
		"platform": runtime.GOOS,
		"endpoints": map[string]string{
			"health":        "/health",
			"synthesize":    "/synthesize",
			"documentation": "/swagger/index.html",
		},
	})
}

// handleHealth reports whether the engine binary and model files are available.
//
// @Summary     Engine environment health
// @Description Read-only diagnostic: engine and model presence, executable bit, platform, working directory listing.
// @Tags        info
// @Produce     json
// @Success     200  {object}  message.EnvironmentReport
// @Router      /health [get]
func (t *Transport) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, t.environment())
}

// handleSynthesize converts text to speech and returns the WAV attachment.
//
// @Summary     Synthesize speech from text
// @Description Runs the Piper engine over the submitted text (query or form parameter, 1–1000 characters)
// @Description and returns the generated audio as an attachment.
// @Tags        synthesize
// @Accept      x-www-form-urlencoded
// @Produce     audio/wav
// @Param       text  query     string  true  "Text to synthesize (1–1000 characters)"
// @Success     200   {file}    binary  "WAV audio"
// @Failure     400   {object}  map[string]string  "Empty or oversized text"
// @Failure     500   {object}  map[string]string  "Engine unavailable, timed out, or failed"
// @Router      /synthesize [post]
func (t *Transport) handleSynthesize(w http.ResponseWriter, r *http.Request, handler transport.Handler) {
	req := &message.SynthesisRequest{
		ID:        uuid.New().String(),
		Text:      r.FormValue("text"),
		Timestamp: time.Now(),
	}

	result, err := handler(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(result.Audio)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Audio)
}

// writeError maps a synthesis failure to an HTTP status with a detail
// message. Caller faults become 400s, everything else a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := err.Error()

	var terr *tts.Error
	if errors.As(err, &terr) && terr.ClientFault() {
		status = http.StatusBadRequest
	}

	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Close gracefully shuts down the HTTP server.
func (t *Transport) Close() error {
	if t.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return t.server.Shutdown(ctx)
	}
	return nil
}

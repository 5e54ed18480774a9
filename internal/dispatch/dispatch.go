// Package dispatch implements the core synthesis pipeline.
//
// The dispatcher receives requests from transports, validates them
// before any file or process is touched, hands the text to the
// synthesizer backend, and packages the audio for delivery. Validation
// failures are reported immediately with no side effects — this is an
// architectural invariant.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nadzzz/sayd/internal/message"
	"github.com/nadzzz/sayd/internal/tts"
)

// Dispatcher is the central request pipeline.
type Dispatcher struct {
	synthesizer tts.Synthesizer
}

// New creates a new Dispatcher around the given synthesizer.
func New(synthesizer tts.Synthesizer) *Dispatcher {
	return &Dispatcher{synthesizer: synthesizer}
}

// Validate checks the request text against the input bounds. It is
// exported so transports can reject bad input before building a full
// request. Returns a *tts.Error of kind KindInvalidInput on failure.
func Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return tts.NewError(tts.KindInvalidInput, "Text cannot be empty", nil)
	}
	// The bound is in characters, not bytes — multi-byte text counts
	// by code point.
	if utf8.RuneCountInString(text) > tts.MaxTextLength {
		return tts.NewError(tts.KindInvalidInput,
			fmt.Sprintf("Text too long (max %d characters)", tts.MaxTextLength), nil)
	}
	return nil
}

// Handle processes a single request through the full pipeline.
// This function is passed as the transport.Handler to each transport.
func (d *Dispatcher) Handle(ctx context.Context, req *message.SynthesisRequest) (*message.SynthesisResult, error) {
	start := time.Now()
	logger := slog.With("request_id", req.ID)

	if err := Validate(req.Text); err != nil {
		logger.Info("rejected invalid input", "error", err)
		return nil, err
	}

	logger.Info("synthesis started", "text_length", len(req.Text))

	res, err := d.synthesizer.Synthesize(ctx, req.Text)
	if err != nil {
		logger.Error("synthesis failed", "error", err)
		return nil, err
	}

	result := &message.SynthesisResult{
		RequestID:   req.ID,
		Audio:       res.Audio,
		ContentType: res.ContentType,
		Filename:    fmt.Sprintf("speech_%s.wav", uuid.New().String()[:8]),
		Duration:    time.Since(start),
	}

	logger.Info("synthesis complete",
		"audio_bytes", len(result.Audio),
		"duration", result.Duration)
	return result, nil
}

// Environment reports the synthesizer's environment for the health endpoint.
func (d *Dispatcher) Environment() *message.EnvironmentReport {
	return d.synthesizer.CheckEnvironment()
}

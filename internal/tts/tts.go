// Package tts defines the interface for text-to-speech synthesis.
//
// Sayd delegates audio generation to a synthesis backend. The shipped
// backend (piper) invokes the Piper executable as a one-shot
// subprocess; the mock backend exists for development and tests.
package tts

import (
	"context"

	"github.com/nadzzz/sayd/internal/message"
)

// Synthesizer converts text to audio.
type Synthesizer interface {
	// Synthesize generates a complete WAV file from the given text.
	// The text is assumed to be validated by the caller (non-empty
	// after trimming, at most MaxTextLength characters).
	Synthesize(ctx context.Context, text string) (*Result, error)

	// CheckEnvironment reports the backend's view of its environment
	// without performing synthesis or mutating anything.
	CheckEnvironment() *message.EnvironmentReport

	// Close releases any resources held by the synthesizer.
	Close() error
}

// Result holds the output of TTS synthesis.
type Result struct {
	// Audio is the synthesized audio as a WAV file.
	Audio []byte

	// ContentType is the MIME type of the audio (e.g., "audio/wav").
	ContentType string
}

// MaxTextLength is the upper bound on synthesizable text, in characters.
const MaxTextLength = 1000

// MinArtifactSize is the smallest plausible size for a generated WAV.
// Anything smaller is treated as empty or corrupted output.
const MinArtifactSize = 1000

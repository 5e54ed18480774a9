// Package message defines the core data types flowing through the sayd pipeline.
package message

import "time"

// SynthesisRequest represents an incoming request from any transport.
type SynthesisRequest struct {
	// ID is a unique identifier for this request (UUID).
	ID string `json:"id"`

	// Text is the content to synthesize, 1–1000 characters after trimming.
	Text string `json:"text"`

	// Timestamp is when the request was received by sayd.
	Timestamp time.Time `json:"timestamp"`
}

// SynthesisResult is the outcome of a successful synthesis.
type SynthesisResult struct {
	// RequestID is the original request ID.
	RequestID string `json:"request_id"`

	// Audio is the synthesized audio as a complete WAV file.
	Audio []byte `json:"-"`

	// ContentType is the MIME type of Audio (e.g., "audio/wav").
	ContentType string `json:"content_type"`

	// Filename is the display filename for attachment delivery
	// (e.g., "speech_1a2b3c4d.wav"). It is distinct from the engine's
	// internal artifact name.
	Filename string `json:"filename"`

	// Duration is how long synthesis took, including engine time.
	Duration time.Duration `json:"duration_ms"`
}

// EnvironmentReport describes the engine environment as seen by the
// health endpoint. All fields are observations; nothing is mutated to
// produce a report.
type EnvironmentReport struct {
	// Status is "healthy" when the engine binary and model both exist
	// and the binary is executable (where that concept applies).
	Status string `json:"status"`

	EngineFound      bool   `json:"piper_found"`
	EngineExecutable bool   `json:"piper_executable"`
	ModelFound       bool   `json:"model_found"`
	EnginePath       string `json:"piper_path"`
	ModelPath        string `json:"model_path"`

	// Platform is the resolved host platform (runtime.GOOS).
	Platform string `json:"platform"`

	// WorkingDirectory is the process's current working directory.
	WorkingDirectory string `json:"working_directory"`

	// FilesInDirectory lists the entries of WorkingDirectory.
	FilesInDirectory []string `json:"files_in_directory"`
}

// Healthy reports whether the composite status is "healthy".
func (r *EnvironmentReport) Healthy() bool {
	return r.Status == "healthy"
}

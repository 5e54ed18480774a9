package tts

import (
	"context"
	"os"
	"runtime"

	"github.com/nadzzz/sayd/internal/message"
)

// Mock is a Synthesizer that returns a canned WAV of silence. It backs
// the "mock" backend for development without a Piper install, and
// serves as the test double for the dispatch and transport layers.
type Mock struct {
	// Err, if set, is returned from every Synthesize call.
	Err error

	// Calls counts Synthesize invocations.
	Calls int

	// LastText records the most recent Synthesize input.
	LastText string
}

// NewMock creates a mock synthesizer.
func NewMock() *Mock { return &Mock{} }

// Synthesize returns half a second of silence as a WAV file.
func (m *Mock) Synthesize(_ context.Context, text string) (*Result, error) {
	m.Calls++
	m.LastText = text
	if m.Err != nil {
		return nil, m.Err
	}
	pcm := make([]byte, 22050) // 0.5s of 16-bit mono silence at 22.05kHz
	return &Result{
		Audio:       WrapPCM(pcm, 22050, 1, 2),
		ContentType: "audio/wav",
	}, nil
}

// CheckEnvironment always reports healthy; the mock has no external needs.
func (m *Mock) CheckEnvironment() *message.EnvironmentReport {
	wd, _ := os.Getwd()
	var entries []string
	if dirents, err := os.ReadDir("."); err == nil {
		for _, d := range dirents {
			entries = append(entries, d.Name())
		}
	}
	return &message.EnvironmentReport{
		Status:           "healthy",
		EngineFound:      true,
		EngineExecutable: true,
		ModelFound:       true,
		EnginePath:       "(mock)",
		ModelPath:        "(mock)",
		Platform:         runtime.GOOS,
		WorkingDirectory: wd,
		FilesInDirectory: entries,
	}
}

// Close is a no-op.
func (m *Mock) Close() error { return nil }

package http

import (
	"context"
	"fmt"
	"runtime"

	"github.com/nadzzz/sayd/internal/message"
	"github.com/nadzzz/sayd/internal/tts"
)

// ttsMock is a transport-level synthesizer double with a controllable
// environment report.
type ttsMock struct {
	report *message.EnvironmentReport
	err    error
	calls  int
}

func newTTSMock() *ttsMock { return &ttsMock{} }

func (m *ttsMock) Synthesize(_ context.Context, text string) (*tts.Result, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &tts.Result{
		Audio:       tts.WrapPCM(make([]byte, 4096), 22050, 1, 2),
		ContentType: "audio/wav",
	}, nil
}

func (m *ttsMock) CheckEnvironment() *message.EnvironmentReport {
	if m.report != nil {
		return m.report
	}
	return &message.EnvironmentReport{Status: "healthy", Platform: runtime.GOOS}
}

func (m *ttsMock) Close() error { return nil }

func engineUnavailable(path string) error {
	return tts.NewError(tts.KindEngineUnavailable,
		fmt.Sprintf("Piper executable not found at %s", path), nil)
}

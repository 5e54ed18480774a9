package tts

// Kind classifies a synthesis failure. Transports map kinds to their
// protocol's status codes; everything except KindInvalidInput is the
// server's (or the engine's) fault.
type Kind string

const (
	// KindInvalidInput marks a caller error: empty or oversized text.
	KindInvalidInput Kind = "invalid_input"

	// KindEngineUnavailable means the engine binary or model file is
	// missing from the configured path.
	KindEngineUnavailable Kind = "engine_unavailable"

	// KindSynthesisTimeout means the engine exceeded its wall-clock budget.
	KindSynthesisTimeout Kind = "synthesis_timeout"

	// KindEngineExecutionFailed means the engine exited non-zero.
	KindEngineExecutionFailed Kind = "engine_execution_failed"

	// KindOutputMissing means the engine exited zero but produced no file.
	KindOutputMissing Kind = "output_missing"

	// KindOutputSuspect means the produced file is implausibly small.
	KindOutputSuspect Kind = "output_suspect"

	// KindInternal covers any other fault during synthesis.
	KindInternal Kind = "internal"
)

// Error is a classified synthesis failure. Detail is the
// human-readable message returned to the caller verbatim.
type Error struct {
	Kind   Kind
	Detail string
	cause  error
}

func (e *Error) Error() string { return e.Detail }

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// ClientFault reports whether the failure was caused by the caller.
func (e *Error) ClientFault() bool { return e.Kind == KindInvalidInput }

// NewError builds a classified error with an optional cause.
func NewError(kind Kind, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, cause: cause}
}

package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nadzzz/sayd/internal/message"
	"github.com/nadzzz/sayd/internal/tts"
)

func newRequest(text string) *message.SynthesisRequest {
	return &message.SynthesisRequest{ID: "test-req", Text: text, Timestamp: time.Now()}
}

func TestHandleRejectsEmptyText(t *testing.T) {
	mock := tts.NewMock()
	d := New(mock)

	_, err := d.Handle(context.Background(), newRequest("   "))

	var terr *tts.Error
	require.ErrorAs(t, err, &terr)
	require.Equal(t, tts.KindInvalidInput, terr.Kind)
	require.Equal(t, "Text cannot be empty", terr.Detail)
	require.Zero(t, mock.Calls, "validation failures must not reach the synthesizer")
}

func TestHandleRejectsOversizedText(t *testing.T) {
	mock := tts.NewMock()
	d := New(mock)

	_, err := d.Handle(context.Background(), newRequest(strings.Repeat("a", 1001)))

	var terr *tts.Error
	require.ErrorAs(t, err, &terr)
	require.Equal(t, tts.KindInvalidInput, terr.Kind)
	require.Contains(t, terr.Detail, "Text too long")
	require.Zero(t, mock.Calls)
}

func TestHandleAcceptsBoundaryLength(t *testing.T) {
	mock := tts.NewMock()
	d := New(mock)

	// Exactly 1000 characters is within bounds.
	result, err := d.Handle(context.Background(), newRequest(strings.Repeat("a", 1000)))
	require.NoError(t, err)
	require.Equal(t, 1, mock.Calls)
	require.NotEmpty(t, result.Audio)
}

func TestHandleCountsCharactersNotBytes(t *testing.T) {
	mock := tts.NewMock()
	d := New(mock)

	// 1000 two-byte characters is 2000 bytes but still within the
	// 1000-character bound.
	_, err := d.Handle(context.Background(), newRequest(strings.Repeat("é", 1000)))
	require.NoError(t, err)
	require.Equal(t, 1, mock.Calls)

	// 1001 characters is over the bound regardless of encoding width.
	_, err = d.Handle(context.Background(), newRequest(strings.Repeat("é", 1001)))
	var terr *tts.Error
	require.ErrorAs(t, err, &terr)
	require.Equal(t, tts.KindInvalidInput, terr.Kind)
	require.Contains(t, terr.Detail, "Text too long")
}

func TestHandleSuccess(t *testing.T) {
	mock := tts.NewMock()
	d := New(mock)

	result, err := d.Handle(context.Background(), newRequest("Hello world"))
	require.NoError(t, err)

	require.Equal(t, "test-req", result.RequestID)
	require.Equal(t, "Hello world", mock.LastText)
	require.Equal(t, "audio/wav", result.ContentType)
	require.True(t, strings.HasPrefix(result.Filename, "speech_"))
	require.True(t, strings.HasSuffix(result.Filename, ".wav"))
	require.Len(t, result.Filename, len("speech_")+8+len(".wav"))
	require.GreaterOrEqual(t, len(result.Audio), tts.MinArtifactSize)
}

func TestHandlePropagatesSynthesisError(t *testing.T) {
	mock := tts.NewMock()
	mock.Err = tts.NewError(tts.KindSynthesisTimeout, "Speech synthesis timed out", nil)
	d := New(mock)

	_, err := d.Handle(context.Background(), newRequest("Hello"))

	var terr *tts.Error
	require.ErrorAs(t, err, &terr)
	require.Equal(t, tts.KindSynthesisTimeout, terr.Kind)
}

func TestValidateWrappedKind(t *testing.T) {
	err := Validate("")
	require.True(t, errors.As(err, new(*tts.Error)))
}

package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// Transcriber turns audio into text
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
}

// Completer answers a text prompt
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TranscribeThenSummarize is a two-step model: speech-to-text followed by a
// text model that receives the instruction prompt and the transcript.
type TranscribeThenSummarize struct {
	transcriber Transcriber
	completer   Completer
	name        string
}

// NewTranscribeThenSummarize composes a transcriber and a completer
func NewTranscribeThenSummarize(t Transcriber, c Completer, name string) *TranscribeThenSummarize {
	return &TranscribeThenSummarize{transcriber: t, completer: c, name: name}
}

// Name returns the model identifier
func (m *TranscribeThenSummarize) Name() string {
	return m.name
}

// Generate transcribes the audio and asks the completer to apply the prompt to it
func (m *TranscribeThenSummarize) Generate(ctx context.Context, prompt, mimeType string, audio []byte) (string, error) {
	transcript, err := m.transcriber.Transcribe(ctx, bytes.NewReader(audio))
	if err != nil {
		return "", err
	}
	return m.completer.Complete(ctx, fmt.Sprintf("%s\n\nMeeting transcript:\n%s", prompt, transcript))
}

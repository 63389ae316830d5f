package ai

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranscriber struct {
	got  []byte
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(_ context.Context, audio io.Reader) (string, error) {
	f.got, _ = io.ReadAll(audio)
	return f.text, f.err
}

type fakeCompleter struct {
	prompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return "{}", nil
}

func TestTranscribeThenSummarize_ComposesPrompt(t *testing.T) {
	tr := &fakeTranscriber{text: "alice: ship it"}
	co := &fakeCompleter{}
	m := NewTranscribeThenSummarize(tr, co, "assemblyai+groq")

	out, err := m.Generate(context.Background(), "Make notes.", "audio/wav", []byte("RIFF"))
	require.NoError(t, err)

	assert.Equal(t, "{}", out)
	assert.Equal(t, []byte("RIFF"), tr.got)
	assert.Contains(t, co.prompt, "Make notes.")
	assert.Contains(t, co.prompt, "alice: ship it")
	assert.Equal(t, "assemblyai+groq", m.Name())
}

func TestTranscribeThenSummarize_TranscriptionError(t *testing.T) {
	co := &fakeCompleter{}
	m := NewTranscribeThenSummarize(&fakeTranscriber{err: errors.New("boom")}, co, "x")

	_, err := m.Generate(context.Background(), "p", "audio/wav", nil)
	require.Error(t, err)
	assert.Empty(t, co.prompt)
}

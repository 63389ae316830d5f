package ai

import (
	"context"
	"fmt"
	"io"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// AssemblyAIClient transcribes audio with the AssemblyAI SDK
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	return &AssemblyAIClient{client: aai.NewClient(cfg.APIKey)}
}

// Transcribe uploads the audio and waits for the transcript text.
// Language detection is on so non-English meetings are transcribed as spoken.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	params := &aai.TranscriptOptionalParams{
		LanguageDetection: aai.Bool(true),
		SpeakerLabels:     aai.Bool(true),
	}

	transcript, err := c.client.Transcripts.TranscribeFromReader(ctx, audio, params)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcribe: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", fmt.Errorf("assemblyai transcript failed: %s", msg)
	}

	if transcript.Text == nil || *transcript.Text == "" {
		return "", fmt.Errorf("assemblyai returned an empty transcript")
	}
	return *transcript.Text, nil
}

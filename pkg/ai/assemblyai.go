package ai

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

var audioExtensions = map[string]bool{
	".mp3": true,
	".m4a": true,
	".wav": true,
	".mp4": true,
	".ogg": true,
}

// IsAudioFile reports whether a path looks like an audio recording that needs
// transcription before extraction.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// Transcriber converts an audio recording into transcript text using the
// official AssemblyAI SDK.
type Transcriber struct {
	client *aai.Client
}

// NewTranscriber creates a Transcriber from config.
func NewTranscriber(cfg *config.AssemblyAIConfig) *Transcriber {
	return &Transcriber{client: aai.NewClient(cfg.APIKey)}
}

// Transcribe uploads the recording and waits for the transcription to finish.
func (t *Transcriber) Transcribe(ctx context.Context, r io.Reader) (string, error) {
	uploadURL, err := t.client.Upload(ctx, r)
	if err != nil {
		return "", fmt.Errorf("failed to upload recording: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}

	transcript, err := t.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", fmt.Errorf("transcription failed: %s", msg)
	}
	if transcript.Text == nil || strings.TrimSpace(*transcript.Text) == "" {
		return "", fmt.Errorf("transcription returned no text")
	}
	return *transcript.Text, nil
}

// Package transcribe obtains word-level timestamps from speech
// recognition providers. Its output anchors subtitle timing when text is
// re-split or re-aligned against the audio.
package transcribe

import (
	"context"
	"fmt"
	"strings"
)

// Word is one recognized word with its position in the audio, in seconds.
type Word struct {
	Text  string
	Start float64
	End   float64
}

// Result is a full transcription. Words may be empty when the provider
// returns plain text only; callers fall back to duration-based timing.
type Result struct {
	Words    []Word
	Text     string
	Language string
	Duration float64
}

// Transcriber turns an audio file into a timed transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}

// Provider selects a transcription backend.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// Options configure a transcription request.
type Options struct {
	Language string // source language hint (ISO 639-1)
	Model    string
	Prompt   string
}

// Factory creates a transcriber for the given provider.
func Factory(ctx context.Context, provider Provider, apiKey string, opts Options) (Transcriber, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAITranscriber(apiKey, opts)
	case ProviderGemini:
		return NewGeminiTranscriber(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func joinWords(words []Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if text := strings.TrimSpace(w.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

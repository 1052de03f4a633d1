package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAITranscriber uses the OpenAI audio API with word-level timestamp
// granularity.
type OpenAITranscriber struct {
	client  openai.Client
	model   string
	options Options
}

type whisperWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type whisperVerboseResponse struct {
	Text     string        `json:"text"`
	Words    []whisperWord `json:"words"`
	Language string        `json:"language"`
	Duration float64       `json:"duration"`
}

func NewOpenAITranscriber(apiKey string, opts Options) (*OpenAITranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	model := opts.Model
	if model == "" {
		model = "whisper-1"
	}

	return &OpenAITranscriber{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		options: opts,
	}, nil
}

func (t *OpenAITranscriber) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("audio file not found: %s", audioPath)
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	params := openai.AudioTranscriptionNewParams{
		File:                   file,
		Model:                  openai.AudioModel(t.model),
		ResponseFormat:         openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []string{"word"},
	}
	if t.options.Language != "" {
		params.Language = openai.String(t.options.Language)
	}
	if t.options.Prompt != "" {
		params.Prompt = openai.String(t.options.Prompt)
	}

	resp, err := t.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	result, err := parseVerboseResponse(resp.RawJSON())
	if err != nil {
		// plain-text fallback keeps the transcript usable without
		// word timing
		return &Result{
			Text:     strings.TrimSpace(resp.Text),
			Language: t.options.Language,
		}, nil
	}
	if result.Language == "" {
		result.Language = t.options.Language
	}
	return result, nil
}

func parseVerboseResponse(rawJSON string) (*Result, error) {
	if rawJSON == "" {
		return nil, fmt.Errorf("empty response")
	}

	var verbose whisperVerboseResponse
	if err := json.Unmarshal([]byte(rawJSON), &verbose); err != nil {
		return nil, fmt.Errorf("failed to parse verbose_json response: %w", err)
	}
	if len(verbose.Words) == 0 && verbose.Text == "" {
		return nil, fmt.Errorf("no words or text in response")
	}

	result := &Result{
		Text:     strings.TrimSpace(verbose.Text),
		Language: verbose.Language,
		Duration: verbose.Duration,
	}
	for _, w := range verbose.Words {
		text := strings.TrimSpace(w.Word)
		if text == "" {
			continue
		}
		result.Words = append(result.Words, Word{Text: text, Start: w.Start, End: w.End})
	}
	return result, nil
}

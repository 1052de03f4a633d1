// Package translate sends subtitle text to an LLM provider in indexed
// batches and maps the results back onto segments. Segments carry plain
// text with real newlines; any markup (ASS tags, HTML) is added later at
// export time, so the prompt never has to ask for tag preservation.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultBatchSize is the number of items sent per API request when
// Options.BatchSize is unset.
const DefaultBatchSize = 50

// TranslationItem is one cue's text, keyed by its position in the
// original slice so results can be matched back regardless of order.
type TranslationItem struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// TranslationResult is the translated counterpart of a TranslationItem.
type TranslationResult struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Translator translates a slice of items, preserving index association.
type Translator interface {
	Translate(
		ctx context.Context,
		items []TranslationItem,
	) ([]TranslationResult, error)
}

// ConcurrentTranslator additionally runs batches in parallel.
type ConcurrentTranslator interface {
	Translator
	TranslateWithConcurrency(
		ctx context.Context,
		items []TranslationItem,
		concurrency int,
	) ([]TranslationResult, error)
}

// Provider selects the backing LLM service.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Options configures a Translator. TargetLanguage is required;
// everything else has a provider default.
type Options struct {
	InputLanguage  string
	TargetLanguage string
	Model          string
	Prompt         string // extra instructions appended to the built prompt
	BatchSize      int
}

// Factory builds the Translator for the given provider.
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Translator, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAITranslator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// BuildPrompt renders one batch into the shared prompt. The contract is
// strict JSON in, strict JSON out: the model returns an array of
// {"index", "text"} objects whose indices match the input.
func BuildPrompt(opts Options, items []TranslationItem) string {
	var sb strings.Builder

	if opts.InputLanguage != "" {
		fmt.Fprintf(&sb,
			"Translate the following %s subtitle texts to %s.\n\n",
			opts.InputLanguage, opts.TargetLanguage)
	} else {
		fmt.Fprintf(&sb,
			"Translate the following subtitle texts to %s.\n\n",
			opts.TargetLanguage)
	}

	sb.WriteString("Rules:\n")
	sb.WriteString("1. Translate only the text content, keeping meaning, tone and register.\n")
	sb.WriteString("2. Each entry is one subtitle cue; never merge, split or reorder entries.\n")
	sb.WriteString("3. Keep line breaks within a text at the same positions as the original.\n")
	sb.WriteString("4. Return ONLY a JSON array with the same structure as the input.\n")
	sb.WriteString("5. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString("6. The 'index' values must match the input indices exactly.\n")
	sb.WriteString("7. No explanations, no markdown fences.\n\n")

	if opts.Prompt != "" {
		fmt.Fprintf(&sb, "Additional instructions: %s\n\n", opts.Prompt)
	}

	sb.WriteString("Input JSON:\n")
	inputJSON, _ := json.MarshalIndent(items, "", "  ")
	sb.Write(inputJSON)
	sb.WriteString("\n\nOutput the translated JSON array only:")

	return sb.String()
}

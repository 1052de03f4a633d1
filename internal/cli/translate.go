package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/subedit/subedit/internal/export"
	"github.com/subedit/subedit/internal/segment"
	"github.com/subedit/subedit/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate [subtitle_file]",
	Short: "Translate subtitles to another language using AI",
	Long: `Translate an existing subtitle file to another language using AI.

The translation is attached to each cue; by default the output is
bilingual with the translated line below the original. Use
--translated-only to drop the original text.

Examples:
  subedit translate video.srt --target-language japanese
  subedit translate video.srt -t spanish --provider anthropic
  subedit translate video.vtt -l english -t german --translated-only`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation (required)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set the provider's env var)")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (provider default when empty)")
	translateCmd.Flags().
		String("provider", "gemini", "Translation provider (gemini, openai, anthropic)")
	translateCmd.Flags().
		Int("concurrency", 3, "Number of parallel translation workers")
	translateCmd.Flags().
		Int("batch-size", 50, "Number of subtitle entries per API request")
	translateCmd.Flags().
		Bool("translated-only", false, "Emit only the translated line")
	translateCmd.Flags().
		String("translation-position", "below", "Translated line position (above, below)")

	_ = translateCmd.MarkFlagRequired("target-language")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := context.Background()

	targetLang, _ := cmd.Flags().GetString("target-language")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	providerStr, _ := cmd.Flags().GetString("provider")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	translatedOnly, _ := cmd.Flags().GetBool("translated-only")
	positionStr, _ := cmd.Flags().GetString("translation-position")
	outputPath, _ := cmd.Flags().GetString("output")
	inputLang, _ := cmd.Flags().GetString("language")

	if inputLang != "" && strings.EqualFold(strings.TrimSpace(inputLang), strings.TrimSpace(targetLang)) {
		return fmt.Errorf("input language %q and target language %q cannot be the same",
			inputLang, targetLang)
	}

	segments, err := loadSegments(subtitlePath)
	if err != nil {
		return err
	}

	provider := translate.Provider(strings.ToLower(providerStr))
	apiKey, err = resolveAPIKey(apiKey, string(provider))
	if err != nil {
		return err
	}

	translator, err := translate.Factory(ctx, provider, apiKey, translate.Options{
		InputLanguage:  inputLang,
		TargetLanguage: targetLang,
		Model:          model,
		BatchSize:      batchSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	items := translate.Items(segments)

	logger.Infow("Translating subtitles",
		"input", subtitlePath,
		"target", targetLang,
		"provider", providerStr,
		"items", len(items),
		"concurrency", concurrency,
	)

	var results []translate.TranslationResult
	if concurrent, ok := translator.(translate.ConcurrentTranslator); ok {
		results, err = concurrent.TranslateWithConcurrency(ctx, items, concurrency)
	} else {
		results, err = translator.Translate(ctx, items)
	}
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	if len(results) < len(items) {
		logger.Warnw("Translation returned fewer results than requested; untranslated cues keep their original text",
			"requested", len(items),
			"returned", len(results),
		)
	}

	translated := translate.Apply(segments, results)

	opts := segment.DefaultOptions()
	opts.IncludeTranslation = true
	if translatedOnly {
		opts.IncludeOriginal = false
	}
	if positionStr == "above" {
		opts.TranslationPosition = segment.TranslationAbove
	}

	format := segment.DetectFormat(subtitlePath)
	if outputPath == "" {
		outputPath = export.Filename(export.DetectBase(subtitlePath), format, opts, time.Now())
	}
	if err := export.WriteFile(outputPath, translated, format, opts); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Translated subtitles written: %s\n", absOutput)
	return nil
}

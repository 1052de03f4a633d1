package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/subedit/subedit/internal/align"
	"github.com/subedit/subedit/internal/export"
	"github.com/subedit/subedit/internal/media"
	"github.com/subedit/subedit/internal/segment"
	"github.com/subedit/subedit/internal/transcribe"
)

var generateCmd = &cobra.Command{
	Use:   "generate [media_file]",
	Short: "Generate timed subtitles for an audio or video file",
	Long: `Generate subtitles for the specified audio or video file using AI
transcription with word-level timestamps.

The command accepts both audio files (mp3, wav, aac, etc.) and video
files (mp4, mkv, etc.). For video files, audio is automatically
extracted before transcription. Long audio is split into chunks and
transcribed in parallel.

With --text, the given script is used as the subtitle text and the
transcription only supplies timing: each fragment of the script is
anchored to the best-matching transcribed segment.

Examples:
  subedit generate video.mp4
  subedit generate audio.mp3 --format vtt --provider openai
  subedit generate video.mp4 --text script.txt
  subedit generate podcast.mp3 -d 2 --concurrency 5`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set OPENAI_API_KEY/GEMINI_API_KEY env var)")
	generateCmd.Flags().
		String("provider", "openai", "Transcription provider (openai, gemini)")
	generateCmd.Flags().
		IntP("chunk-duration", "d", 1, "Chunk duration in minutes for splitting audio")
	generateCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt)")
	generateCmd.Flags().
		Int("concurrency", 3, "Number of parallel transcription workers")
	generateCmd.Flags().
		String("model", "", "Transcription model (provider default when empty)")
	generateCmd.Flags().
		String("text", "", "Script file whose text replaces the transcript, keeping AI timing")
	generateCmd.Flags().
		Int("max-words", 12, "Maximum words per subtitle cue")
	generateCmd.Flags().
		Float64("max-cue-duration", 5, "Maximum seconds per subtitle cue")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if !media.IsMediaFile(mediaPath) {
		return fmt.Errorf("unsupported file type: %s (expected audio or video file)",
			filepath.Ext(mediaPath))
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	providerStr, _ := cmd.Flags().GetString("provider")
	chunkMinutes, _ := cmd.Flags().GetInt("chunk-duration")
	formatStr, _ := cmd.Flags().GetString("format")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	model, _ := cmd.Flags().GetString("model")
	textPath, _ := cmd.Flags().GetString("text")
	maxWords, _ := cmd.Flags().GetInt("max-words")
	maxCueDuration, _ := cmd.Flags().GetFloat64("max-cue-duration")
	outputPath, _ := cmd.Flags().GetString("output")
	language, _ := cmd.Flags().GetString("language")

	provider := transcribe.Provider(strings.ToLower(providerStr))
	apiKey, err := resolveAPIKey(apiKey, string(provider))
	if err != nil {
		return err
	}

	format, err := parseFormat(formatStr)
	if err != nil {
		return err
	}

	logger.Infow("Starting subtitle generation",
		"input", mediaPath,
		"provider", providerStr,
		"chunk_minutes", chunkMinutes,
		"concurrency", concurrency,
	)

	tempDir, err := os.MkdirTemp("", "subedit-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(tempDir)
	}()

	audioPath := filepath.Join(tempDir, "audio.mp3")
	logger.Infow("Preparing audio for transcription")
	if err := media.ExtractAudio(ctx, mediaPath, audioPath, media.DefaultAudioOptions()); err != nil {
		return fmt.Errorf("failed to prepare audio: %w", err)
	}

	chunkDir := filepath.Join(tempDir, "chunks")
	chunkSeconds := float64(chunkMinutes) * 60
	chunks, err := media.ChunkAudio(ctx, audioPath, chunkSeconds, chunkDir, 0)
	if err != nil {
		return fmt.Errorf("failed to split audio: %w", err)
	}
	logger.Infow("Created audio chunks", "count", len(chunks))

	transcriber, err := transcribe.Factory(ctx, provider, apiKey, transcribe.Options{
		Language: language,
		Model:    model,
	})
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	result, err := transcribe.TranscribeChunks(ctx, transcriber, chunks, concurrency)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}
	logger.Infow("Transcription complete", "words", len(result.Words))

	groupOpts := transcribe.DefaultGroupOptions()
	groupOpts.MaxWords = maxWords
	groupOpts.MaxDuration = maxCueDuration

	segments := transcribe.GroupWords(result.Words, groupOpts)
	if len(segments) == 0 && result.Text != "" {
		// no word timing; distribute plain text over the audio
		segments = align.SplitToTimed(result.Text, result.Duration, align.SplitOptions{})
	}
	if len(segments) == 0 {
		return fmt.Errorf("transcription produced no usable text")
	}

	if textPath != "" {
		segments, err = alignScript(textPath, segments, result.Duration)
		if err != nil {
			return err
		}
	}

	if outputPath == "" {
		outputPath = export.Filename(export.DetectBase(mediaPath), format,
			segment.DefaultOptions(), time.Now())
	}
	if err := export.WriteFile(outputPath, segments, format, segment.DefaultOptions()); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles generated: %s\n", absOutput)
	fmt.Printf("  Segments: %d\n", len(segments))
	return nil
}

// alignScript replaces the transcript text with the user's script,
// borrowing timing from the AI segments. Falls back to proportional
// splitting over the audio when nothing anchors.
func alignScript(textPath string, aiSegments []segment.Segment, totalDuration float64) ([]segment.Segment, error) {
	text, err := os.ReadFile(textPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}

	fragments := align.SplitText(string(text))
	if len(fragments) == 0 {
		return nil, fmt.Errorf("no text to align in %s", textPath)
	}

	if aligned := align.AlignToTiming(fragments, aiSegments); aligned != nil {
		return aligned, nil
	}
	return align.SplitToTimed(string(text), totalDuration, align.SplitOptions{}), nil
}

// resolveAPIKey falls back to the provider's conventional env var.
func resolveAPIKey(apiKey, provider string) (string, error) {
	if apiKey != "" {
		return apiKey, nil
	}

	var envVar string
	switch provider {
	case "openai":
		envVar = "OPENAI_API_KEY"
	case "gemini":
		envVar = "GEMINI_API_KEY"
	case "anthropic":
		envVar = "ANTHROPIC_API_KEY"
	default:
		return "", fmt.Errorf("unsupported provider: %s", provider)
	}

	if key := os.Getenv(envVar); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("API key is required: use --api-key or set %s", envVar)
}

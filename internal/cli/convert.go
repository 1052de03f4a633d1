package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/subedit/subedit/internal/export"
	"github.com/subedit/subedit/internal/segment"
	"github.com/subedit/subedit/internal/timecode"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert subtitles between SRT and VTT",
	Long: `Convert a subtitle file between SRT and VTT, optionally splitting
bilingual cues into original and translated lines.

Examples:
  subedit convert video.srt --format vtt
  subedit convert video.vtt -f srt -o converted.srt
  subedit convert bilingual.srt --bilingual --translation-position above
  subedit convert video.srt --clipboard`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt)")
	convertCmd.Flags().
		Bool("bilingual", false, "Emit original and translated lines in each cue")
	convertCmd.Flags().
		Bool("translated-only", false, "Emit only the translated line")
	convertCmd.Flags().
		String("translation-position", "below", "Translated line position (above, below)")
	convertCmd.Flags().
		Bool("clipboard", false, "Copy the output to the system clipboard instead of writing a file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	bilingual, _ := cmd.Flags().GetBool("bilingual")
	translatedOnly, _ := cmd.Flags().GetBool("translated-only")
	positionStr, _ := cmd.Flags().GetString("translation-position")
	toClipboard, _ := cmd.Flags().GetBool("clipboard")
	outputPath, _ := cmd.Flags().GetString("output")

	segments, err := loadSegments(inputPath)
	if err != nil {
		return err
	}

	format, err := parseFormat(formatStr)
	if err != nil {
		return err
	}

	opts := segment.DefaultOptions()
	switch {
	case translatedOnly:
		opts.IncludeOriginal = false
		opts.IncludeTranslation = true
	case bilingual:
		opts.IncludeTranslation = true
	}
	if positionStr == "above" {
		opts.TranslationPosition = segment.TranslationAbove
	}

	logger.Infow("Converting subtitles",
		"input", inputPath,
		"format", formatStr,
		"segments", len(segments),
	)

	if toClipboard {
		if err := export.CopyToClipboard(segments, format, opts); err != nil {
			return err
		}
		fmt.Println("Subtitles copied to clipboard")
		return nil
	}

	if outputPath == "" {
		outputPath = export.Filename(export.DetectBase(inputPath), format, opts, time.Now())
	}
	if err := export.WriteFile(outputPath, segments, format, opts); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles written: %s\n", absOutput)
	return nil
}

// loadSegments parses a subtitle file and splits clean bilingual cues.
func loadSegments(path string) ([]segment.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}

	segments := segment.Parse(string(data), segment.DetectFormat(path))
	if len(segments) == 0 {
		return nil, fmt.Errorf("no parseable cues in %s", path)
	}
	return segment.NormalizeBilingual(segments), nil
}

func parseFormat(s string) (timecode.Format, error) {
	switch strings.ToLower(s) {
	case "srt":
		return timecode.FormatSRT, nil
	case "vtt":
		return timecode.FormatVTT, nil
	default:
		return timecode.FormatSRT, fmt.Errorf("unsupported format %q: use srt or vtt", s)
	}
}

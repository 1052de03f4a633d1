package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/subedit/subedit/internal/align"
	"github.com/subedit/subedit/internal/export"
	"github.com/subedit/subedit/internal/media"
	"github.com/subedit/subedit/internal/segment"
	"github.com/subedit/subedit/internal/timecode"
)

var splitCmd = &cobra.Command{
	Use:   "split [text_file]",
	Short: "Split raw text into timed subtitle segments",
	Long: `Split a plain text file into subtitle fragments and distribute them
over a duration. Fragments come from line breaks when present, sentence
punctuation otherwise, or fixed-width chunks as a last resort. Time is
allocated by text complexity unless --uniform is set.

The total duration comes from --duration, or from probing a media file
given with --media.

Examples:
  subedit split script.txt --duration 120
  subedit split script.txt --media episode.mp4 --format vtt
  subedit split script.txt -d 90 --uniform`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().
		Float64P("duration", "d", 0, "Total duration in seconds to distribute the text over")
	splitCmd.Flags().
		String("media", "", "Media file to probe for the total duration")
	splitCmd.Flags().
		Bool("uniform", false, "Give every segment an equal share of the duration")
	splitCmd.Flags().
		Float64("min-duration", 0, "Minimum seconds per segment (weighted mode)")
	splitCmd.Flags().
		Float64("max-duration", 0, "Maximum seconds per segment (weighted mode)")
	splitCmd.Flags().
		StringP("format", "f", "srt", "Output subtitle format (srt, vtt)")
}

func runSplit(cmd *cobra.Command, args []string) error {
	textPath := args[0]

	duration, _ := cmd.Flags().GetFloat64("duration")
	mediaPath, _ := cmd.Flags().GetString("media")
	uniform, _ := cmd.Flags().GetBool("uniform")
	minDur, _ := cmd.Flags().GetFloat64("min-duration")
	maxDur, _ := cmd.Flags().GetFloat64("max-duration")
	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	if duration <= 0 && mediaPath == "" {
		return fmt.Errorf("a total duration is required: use --duration or --media")
	}
	if duration <= 0 {
		probed, err := media.Duration(context.Background(), mediaPath)
		if err != nil {
			return fmt.Errorf("failed to probe media duration: %w", err)
		}
		duration = probed
	}
	if duration <= 0 {
		return fmt.Errorf("media has no usable duration")
	}

	format, err := parseFormat(formatStr)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(textPath)
	if err != nil {
		return fmt.Errorf("failed to read text file: %w", err)
	}

	segments := align.SplitToTimed(string(text), duration, align.SplitOptions{
		Uniform:     uniform,
		MinDuration: minDur,
		MaxDuration: maxDur,
	})
	if len(segments) == 0 {
		return fmt.Errorf("no text to split in %s", textPath)
	}

	logger.Infow("Split text into segments",
		"input", textPath,
		"segments", len(segments),
		"duration", timecode.FormatShort(duration),
		"uniform", uniform,
	)

	if outputPath == "" {
		outputPath = export.Filename(export.DetectBase(textPath), format,
			segment.DefaultOptions(), time.Now())
	}
	if err := export.WriteFile(outputPath, segments, format, segment.DefaultOptions()); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Timed subtitles written: %s\n", absOutput)
	fmt.Printf("  Segments: %d\n", len(segments))
	return nil
}

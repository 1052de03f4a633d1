package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/subedit/subedit/internal/align"
	"github.com/subedit/subedit/internal/export"
	"github.com/subedit/subedit/internal/segment"
)

var correctCmd = &cobra.Command{
	Use:   "correct [subtitle_file] [text_file]",
	Short: "Replace subtitle text with a corrected transcript, keeping timing",
	Long: `Apply a corrected transcript to an existing subtitle file without
touching the timestamps. The corrected text is segmented and matched to
the existing cues by position when the counts are close, or by text
similarity otherwise; cues with no good match keep their original text.

Examples:
  subedit correct video.srt corrected.txt
  subedit correct video.srt corrected.txt -o fixed.srt`,
	Args: cobra.ExactArgs(2),
	RunE: runCorrect,
}

func init() {
	rootCmd.AddCommand(correctCmd)
}

func runCorrect(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	textPath := args[1]
	outputPath, _ := cmd.Flags().GetString("output")

	segments, err := loadSegments(subtitlePath)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(textPath)
	if err != nil {
		return fmt.Errorf("failed to read text file: %w", err)
	}

	corrected := align.CorrectSegments(string(text), segments)

	logger.Infow("Corrected subtitle text",
		"input", subtitlePath,
		"segments", len(corrected),
	)

	format := segment.DetectFormat(subtitlePath)
	if outputPath == "" {
		outputPath = export.Filename(export.DetectBase(subtitlePath)+"_corrected",
			format, segment.DefaultOptions(), time.Now())
	}
	if err := export.WriteFile(outputPath, corrected, format, segment.DefaultOptions()); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Corrected subtitles written: %s\n", absOutput)
	return nil
}

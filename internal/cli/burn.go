package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/subedit/subedit/internal/config"
	"github.com/subedit/subedit/internal/export"
)

var burnCmd = &cobra.Command{
	Use:   "burn [subtitle_file]",
	Short: "Render subtitles into a video with the configured style",
	Long: `Render a subtitle file as a styled video: every frame is drawn with
the configured font, colors, panel and animation effect, then encoded
with ffmpeg. Interrupting the command stops the export within one frame.

The visual style comes from the config file (see --config); width,
height and fps can be overridden per run.

Examples:
  subedit burn video.srt
  subedit burn video.srt --width 1080 --height 1920 --fps 60
  subedit burn video.srt --config mystyle.yaml -o out.mp4
  subedit burn video.srt --ass -o styled.ass`,
	Args: cobra.ExactArgs(1),
	RunE: runBurn,
}

func init() {
	rootCmd.AddCommand(burnCmd)

	burnCmd.Flags().String("config", "", "Style config file (defaults to the user config)")
	burnCmd.Flags().Int("width", 0, "Output width in pixels")
	burnCmd.Flags().Int("height", 0, "Output height in pixels")
	burnCmd.Flags().Int("fps", 0, "Output frame rate")
	burnCmd.Flags().Bool("ass", false, "Write a styled ASS file instead of encoding video")
}

func runBurn(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	configPath, _ := cmd.Flags().GetString("config")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	fps, _ := cmd.Flags().GetInt("fps")
	asASS, _ := cmd.Flags().GetBool("ass")
	outputPath, _ := cmd.Flags().GetString("output")

	segments, err := loadSegments(subtitlePath)
	if err != nil {
		return err
	}

	if configPath == "" {
		configPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	style := cfg.Style.ToStyle()

	if asASS {
		content := export.NewASSWriter().ASS(segments, style)
		if outputPath == "" {
			outputPath = export.DetectBase(subtitlePath) + ".ass"
		}
		if err := writeText(outputPath, content); err != nil {
			return err
		}
		absOutput, _ := filepath.Abs(outputPath)
		fmt.Printf("Styled subtitles written: %s\n", absOutput)
		return nil
	}

	opts := export.DefaultVideoOptions()
	opts.Style = style
	if cfg.Export.Width > 0 {
		opts.Width = cfg.Export.Width
	}
	if cfg.Export.Height > 0 {
		opts.Height = cfg.Export.Height
	}
	if cfg.Export.FPS > 0 {
		opts.FPS = cfg.Export.FPS
	}
	if width > 0 {
		opts.Width = width
	}
	if height > 0 {
		opts.Height = height
	}
	if fps > 0 {
		opts.FPS = fps
	}

	if outputPath == "" {
		outputPath = export.VideoFilename(export.DetectBase(subtitlePath),
			opts.Width, opts.Height, time.Now())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exporter := export.NewVideoExporter(opts, logger)
	if err := exporter.Export(ctx, segments, outputPath); err != nil {
		return fmt.Errorf("video export failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Video written: %s\n", absOutput)
	return nil
}

func writeText(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

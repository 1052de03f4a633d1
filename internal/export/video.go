package export

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	"golang.org/x/sync/errgroup"

	ffmpegbin "github.com/subedit/subedit/internal/ffmpeg"
	"github.com/subedit/subedit/internal/logging"
	"github.com/subedit/subedit/internal/render"
	"github.com/subedit/subedit/internal/segment"
)

// VideoOptions configures a burned-in subtitle render.
type VideoOptions struct {
	Width      int
	Height     int
	FPS        int
	Style      render.Style
	Background color.Color
}

func DefaultVideoOptions() VideoOptions {
	return VideoOptions{
		Width:      1280,
		Height:     720,
		FPS:        30,
		Style:      render.DefaultStyle(),
		Background: color.Black,
	}
}

// VideoExporter renders subtitle frames and pipes them to ffmpeg as raw
// RGBA video. The segment list is snapshotted at start, so edits made
// while an export runs do not affect the output.
type VideoExporter struct {
	opts   VideoOptions
	logger *logging.Logger
}

func NewVideoExporter(opts VideoOptions, logger *logging.Logger) *VideoExporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &VideoExporter{opts: opts, logger: logger}
}

// VideoFilename builds the output name for a video export, recording the
// frame orientation alongside the timestamp.
func VideoFilename(base string, width, height int, now time.Time) string {
	orientation := "landscape"
	if height > width {
		orientation = "portrait"
	}
	return fmt.Sprintf("%s_%s_%s.mp4", base, orientation, now.Format("20060102-150405"))
}

// Export renders every frame from t=0 to the end of the last segment and
// encodes the result to outputPath. Cancellation is checked once per
// frame, so an aborted export stops within one frame interval.
func (e *VideoExporter) Export(ctx context.Context, segments []segment.Segment, outputPath string) error {
	if len(segments) == 0 {
		return fmt.Errorf("nothing to export: no segments")
	}
	if e.opts.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", e.opts.FPS)
	}

	snapshot := segment.Clone(segments)
	total := 0.0
	for _, seg := range snapshot {
		if seg.End > total {
			total = seg.End
		}
	}
	frames := frameCount(total, e.opts.FPS)

	canvas, err := render.NewImageCanvas(e.opts.Width, e.opts.Height)
	if err != nil {
		return err
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	e.logger.Infow("starting video export",
		"output", outputPath,
		"frames", frames,
		"fps", e.opts.FPS,
		"size", fmt.Sprintf("%dx%d", e.opts.Width, e.opts.Height),
	)

	pr, pw := io.Pipe()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer func() {
			_ = pw.Close()
		}()

		for i := 0; i < frames; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			t := float64(i) / float64(e.opts.FPS)
			canvas.Clear(e.opts.Background)
			if seg := segment.ActiveAt(snapshot, t); seg != nil {
				render.DrawFrame(canvas, *seg, e.opts.Style,
					float64(e.opts.Width), float64(e.opts.Height), t)
			}

			if _, err := pw.Write(canvas.Image().Pix); err != nil {
				return fmt.Errorf("failed to write frame %d: %w", i, err)
			}
		}
		return nil
	})

	g.Go(func() error {
		err := ffmpeg.Input("pipe:0", ffmpeg.KwArgs{
			"format":    "rawvideo",
			"pix_fmt":   "rgba",
			"s":         fmt.Sprintf("%dx%d", e.opts.Width, e.opts.Height),
			"framerate": e.opts.FPS,
		}).
			Output(outputPath, ffmpeg.KwArgs{
				"vcodec":  "libx264",
				"pix_fmt": "yuv420p",
				"r":       e.opts.FPS,
			}).
			OverWriteOutput().
			SetFfmpegPath(ffmpegPath).
			WithInput(pr).
			Run()
		// drain the pipe so the frame producer never blocks on a
		// failed encoder
		_ = pr.CloseWithError(err)
		if err != nil {
			return fmt.Errorf("ffmpeg encoding failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	e.logger.Infow("video export complete", "output", outputPath)
	return nil
}

// frameCount covers [0, total] inclusive of a final frame at the media
// end so the last cue's tail is rendered.
func frameCount(total float64, fps int) int {
	if total <= 0 {
		return 1
	}
	return int(math.Ceil(total*float64(fps))) + 1
}

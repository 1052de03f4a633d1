package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	"golang.org/x/sync/errgroup"

	ffmpegbin "github.com/subedit/subedit/internal/ffmpeg"
)

// ChunkInfo locates one audio chunk within the source timeline.
type ChunkInfo struct {
	Path  string
	Index int
	Start float64 // seconds
	End   float64
}

// AudioOptions controls audio extraction and compression.
type AudioOptions struct {
	Format     string // wav, mp3, aac, flac
	SampleRate int
	Channels   int
	Bitrate    string // for lossy formats, e.g. "64k"
}

// DefaultAudioOptions targets speech transcription: 16kHz mono mp3.
func DefaultAudioOptions() AudioOptions {
	return AudioOptions{
		Format:     "mp3",
		SampleRate: 16000,
		Channels:   1,
		Bitrate:    "64k",
	}
}

func (o AudioOptions) kwargs() ffmpeg.KwArgs {
	kwargs := ffmpeg.KwArgs{
		"vn": "",
		"ar": o.SampleRate,
		"ac": o.Channels,
		"y":  "",
	}
	switch o.Format {
	case "wav":
		kwargs["acodec"] = "pcm_s16le"
	case "aac":
		kwargs["acodec"] = "aac"
		if o.Bitrate != "" {
			kwargs["b:a"] = o.Bitrate
		}
	case "flac":
		kwargs["acodec"] = "flac"
	default:
		kwargs["acodec"] = "libmp3lame"
		if o.Bitrate != "" {
			kwargs["b:a"] = o.Bitrate
		}
	}
	return kwargs
}

// ExtractAudio pulls the audio track out of a media file.
func ExtractAudio(ctx context.Context, inputPath, outputPath string, opts AudioOptions) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	err = ffmpeg.Input(inputPath).
		Output(outputPath, opts.kwargs()).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()
	if err != nil {
		return fmt.Errorf("audio extraction failed: %w", err)
	}
	return nil
}

// ChunkAudio splits an audio file into fixed-length chunks, transcoding
// in parallel. Concurrency defaults to 10 workers when non-positive.
func ChunkAudio(ctx context.Context, audioPath string, chunkSeconds float64, outputDir string, concurrency int) ([]ChunkInfo, error) {
	if chunkSeconds <= 0 {
		return nil, fmt.Errorf("chunk duration must be positive, got %v", chunkSeconds)
	}
	if concurrency <= 0 {
		concurrency = 10
	}

	total, err := Duration(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get audio duration: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return nil, err
	}

	baseName := DetectBaseName(audioPath)
	ext := filepath.Ext(audioPath)

	var jobs []ChunkInfo
	for i := 0; ; i++ {
		start := float64(i) * chunkSeconds
		if start >= total {
			break
		}
		end := start + chunkSeconds
		if end > total {
			end = total
		}
		jobs = append(jobs, ChunkInfo{
			Path:  filepath.Join(outputDir, fmt.Sprintf("%s_chunk_%03d%s", baseName, i, ext)),
			Index: i,
			Start: start,
			End:   end,
		})
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	chunks := make([]ChunkInfo, len(jobs))
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			err := ffmpeg.Input(audioPath, ffmpeg.KwArgs{"ss": job.Start}).
				Output(job.Path, ffmpeg.KwArgs{
					"t": job.End - job.Start,
					"c": "copy",
					"y": "",
				}).
				OverWriteOutput().
				SetFfmpegPath(ffmpegPath).
				Run()
			if err != nil {
				return fmt.Errorf("failed to create chunk %d: %w", job.Index, err)
			}
			chunks[job.Index] = job
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(chunks, func(i, j int) bool { return chunks[i].Index < chunks[j].Index })
	return chunks, nil
}

// CleanupChunks removes chunk files, keeping the last error.
func CleanupChunks(chunks []ChunkInfo) error {
	var lastErr error
	for _, chunk := range chunks {
		if err := os.Remove(chunk.Path); err != nil && !os.IsNotExist(err) {
			lastErr = err
		}
	}
	return lastErr
}

// DetectBaseName strips directory and extension from a path.
func DetectBaseName(path string) string {
	name := filepath.Base(path)
	return name[:len(name)-len(filepath.Ext(name))]
}

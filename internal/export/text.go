// Package export turns an edited segment list into deliverables: SRT and
// VTT text, styled ASS, and burned-in video.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/subedit/subedit/internal/segment"
	"github.com/subedit/subedit/internal/timecode"
)

// Text serializes segments in the requested format.
func Text(segments []segment.Segment, format timecode.Format, opts segment.Options) string {
	if format == timecode.FormatVTT {
		return segment.SerializeVTT(segments, opts)
	}
	return segment.SerializeSRT(segments, opts)
}

// Filename builds the output name for a text export. The variant part
// records what the file contains, so exports of the same project with
// different content toggles never overwrite each other.
func Filename(base string, format timecode.Format, opts segment.Options, now time.Time) string {
	ext := ".srt"
	if format == timecode.FormatVTT {
		ext = ".vtt"
	}
	return fmt.Sprintf("%s_%s_%s%s", base, variant(opts), now.Format("20060102-150405"), ext)
}

func variant(opts segment.Options) string {
	switch {
	case opts.IncludeOriginal && opts.IncludeTranslation:
		if opts.TranslationPosition == segment.TranslationAbove {
			return "bilingual-above"
		}
		return "bilingual"
	case opts.IncludeTranslation:
		return "translated"
	default:
		return "original"
	}
}

// WriteFile serializes segments and writes them to path, creating parent
// directories as needed.
func WriteFile(path string, segments []segment.Segment, format timecode.Format, opts segment.Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	content := Text(segments, format, opts)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write subtitle file: %w", err)
	}
	return nil
}

// CopyToClipboard places serialized subtitle text on the system clipboard.
func CopyToClipboard(segments []segment.Segment, format timecode.Format, opts segment.Options) error {
	content := Text(segments, format, opts)
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// DetectBase strips the extension from a source path for use as the
// export filename base.
func DetectBase(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

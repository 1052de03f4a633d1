package segment

import (
	"fmt"
	"strings"

	"github.com/subedit/subedit/internal/timecode"
)

// placement of the translated line relative to the original
type TranslationPosition string

const (
	TranslationAbove TranslationPosition = "above"
	TranslationBelow TranslationPosition = "below"
)

// Options controls which text lines each serialized segment carries.
type Options struct {
	IncludeOriginal     bool
	IncludeTranslation  bool
	TranslationPosition TranslationPosition
}

// DefaultOptions emits only the original text.
func DefaultOptions() Options {
	return Options{
		IncludeOriginal:     true,
		TranslationPosition: TranslationBelow,
	}
}

// SerializeSRT renders segments as SRT. A segment contributing zero
// text lines still emits its index and time header so numbering stays
// stable.
func SerializeSRT(segments []Segment, opts Options) string {
	var sb strings.Builder
	for i, seg := range segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			timecode.FormatTimestamp(seg.Start, timecode.FormatSRT),
			timecode.FormatTimestamp(seg.End, timecode.FormatSRT)))
		writeTextLines(&sb, seg, opts)
		sb.WriteString("\n")
	}
	return sb.String()
}

// SerializeVTT renders segments as WebVTT.
func SerializeVTT(segments []Segment, opts Options) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, seg := range segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			timecode.FormatTimestamp(seg.Start, timecode.FormatVTT),
			timecode.FormatTimestamp(seg.End, timecode.FormatVTT)))
		writeTextLines(&sb, seg, opts)
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeTextLines(sb *strings.Builder, seg Segment, opts Options) {
	translated := opts.IncludeTranslation && seg.Translated != ""

	if translated && opts.TranslationPosition == TranslationAbove {
		sb.WriteString(seg.Translated)
		sb.WriteString("\n")
	}
	if opts.IncludeOriginal && seg.Text != "" {
		sb.WriteString(seg.Text)
		sb.WriteString("\n")
	}
	if translated && opts.TranslationPosition != TranslationAbove {
		sb.WriteString(seg.Translated)
		sb.WriteString("\n")
	}
}

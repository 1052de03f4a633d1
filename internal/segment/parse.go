package segment

import (
	"path/filepath"
	"strings"

	"github.com/subedit/subedit/internal/timecode"
)

// Parse reads SRT or VTT content into segments. The parser is lenient:
// blocks without a parseable time range or with empty text are dropped,
// never aborting the whole parse. IDs are assigned 1..N over the
// accepted blocks.
func Parse(content string, format timecode.Format) []Segment {
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var segments []Segment
	for _, block := range strings.Split(content, "\n\n") {
		seg, ok := parseBlock(block, format)
		if !ok {
			continue
		}
		seg.ID = len(segments) + 1
		segments = append(segments, seg)
	}
	return segments
}

func parseBlock(block string, format timecode.Format) (Segment, bool) {
	lines := strings.Split(block, "\n")

	// locate the line carrying the time range; everything before it
	// (index line, WEBVTT header, cue identifier) is ignored
	timeIdx := -1
	for i, line := range lines {
		if strings.Contains(line, "-->") {
			timeIdx = i
			break
		}
	}
	if timeIdx < 0 {
		return Segment{}, false
	}

	start, end, ok := parseTimeRange(lines[timeIdx], format)
	if !ok {
		return Segment{}, false
	}

	var textLines []string
	for _, line := range lines[timeIdx+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		textLines = append(textLines, strings.TrimRight(line, " \t"))
	}
	if len(textLines) == 0 {
		return Segment{}, false
	}

	return Segment{
		Start: start,
		End:   end,
		Text:  strings.Join(textLines, "\n"),
	}, true
}

// parseTimeRange parses "start --> end [cue settings]". Cue settings
// after the end timestamp are discarded.
func parseTimeRange(line string, format timecode.Format) (float64, float64, bool) {
	parts := strings.SplitN(line, "-->", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	start, err := timecode.Parse(strings.TrimSpace(parts[0]), format)
	if err != nil {
		return 0, 0, false
	}

	endPart := strings.TrimSpace(parts[1])
	if fields := strings.Fields(endPart); len(fields) > 0 {
		endPart = fields[0]
	}
	end, err := timecode.Parse(endPart, format)
	if err != nil {
		return 0, 0, false
	}

	return start, end, true
}

// DetectFormat guesses the subtitle format from a file path, defaulting
// to SRT.
func DetectFormat(path string) timecode.Format {
	if strings.ToLower(filepath.Ext(path)) == ".vtt" {
		return timecode.FormatVTT
	}
	return timecode.FormatSRT
}

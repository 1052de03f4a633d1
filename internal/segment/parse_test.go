package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subedit/subedit/internal/timecode"
)

func TestParseSRT(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:04,000\nHello world\n\n2\n00:00:05,000 --> 00:00:07,500\nBye\n"

	segments := Parse(content, timecode.FormatSRT)
	require.Len(t, segments, 2)

	assert.Equal(t, 1, segments[0].ID)
	assert.InDelta(t, 1.0, segments[0].Start, 0.0005)
	assert.InDelta(t, 4.0, segments[0].End, 0.0005)
	assert.Equal(t, "Hello world", segments[0].Text)

	assert.Equal(t, 2, segments[1].ID)
	assert.InDelta(t, 5.0, segments[1].Start, 0.0005)
	assert.InDelta(t, 7.5, segments[1].End, 0.0005)
	assert.Equal(t, "Bye", segments[1].Text)
}

func TestParseStripsByteOrderMark(t *testing.T) {
	content := "\uFEFF1\n00:00:01,000 --> 00:00:04,000\nHello\n"

	segments := Parse(content, timecode.FormatSRT)
	require.Len(t, segments, 1)
	assert.Equal(t, "Hello", segments[0].Text)
}

func TestParsePreservesInternalNewlines(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:04,000\nFirst line\nSecond line\n"

	segments := Parse(content, timecode.FormatSRT)
	require.Len(t, segments, 1)
	assert.Equal(t, "First line\nSecond line", segments[0].Text)
}

func TestParseSkipsMalformedBlocks(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:04,000\nGood\n\n" +
		"2\nnot a time range\nBad\n\n" +
		"3\n00:00:99,000 --> 00:00:10,000\nBad timestamp\n\n" +
		"4\n00:00:08,000 --> 00:00:09,000\n\n" + // no text
		"5\n00:00:10,000 --> 00:00:12,000\nAlso good\n"

	segments := Parse(content, timecode.FormatSRT)
	require.Len(t, segments, 2)
	assert.Equal(t, "Good", segments[0].Text)
	assert.Equal(t, "Also good", segments[1].Text)
	// ids renumbered over accepted blocks only
	assert.Equal(t, 1, segments[0].ID)
	assert.Equal(t, 2, segments[1].ID)
}

func TestParseVTTDiscardsCueSettings(t *testing.T) {
	content := "WEBVTT\n\n00:00:01.000 --> 00:00:03.000 position:50% line:80%\nCue text\n"

	segments := Parse(content, timecode.FormatVTT)
	require.Len(t, segments, 1)
	assert.InDelta(t, 1.0, segments[0].Start, 0.0005)
	assert.InDelta(t, 3.0, segments[0].End, 0.0005)
	assert.Equal(t, "Cue text", segments[0].Text)
}

func TestParseEmptyContent(t *testing.T) {
	assert.Empty(t, Parse("", timecode.FormatSRT))
	assert.Empty(t, Parse("\n\n\n", timecode.FormatVTT))
}

func TestRoundTripSRT(t *testing.T) {
	original := []Segment{
		{ID: 1, Start: 1, End: 4, Text: "Hello world"},
		{ID: 2, Start: 5, End: 7.5, Text: "Bye"},
		{ID: 3, Start: 10.25, End: 12.125, Text: "Multi\nline"},
	}

	out := SerializeSRT(original, DefaultOptions())
	parsed := Parse(out, timecode.FormatSRT)

	require.Len(t, parsed, len(original))
	for i := range original {
		assert.InDelta(t, original[i].Start, parsed[i].Start, 0.001)
		assert.InDelta(t, original[i].End, parsed[i].End, 0.001)
		assert.Equal(t, original[i].Text, parsed[i].Text)
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, timecode.FormatVTT, DetectFormat("movie.vtt"))
	assert.Equal(t, timecode.FormatSRT, DetectFormat("movie.srt"))
	assert.Equal(t, timecode.FormatSRT, DetectFormat("movie.txt"))
}

package export

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subedit/subedit/internal/anim"
	"github.com/subedit/subedit/internal/render"
	"github.com/subedit/subedit/internal/segment"
	"github.com/subedit/subedit/internal/timecode"
)

func fixtureSegments() []segment.Segment {
	return []segment.Segment{
		{ID: 1, Start: 0, End: 2.5, Text: "Hello world", Translated: "你好世界"},
		{ID: 2, Start: 3, End: 5, Text: "Bye", Translated: "再见"},
	}
}

func TestTextSRT(t *testing.T) {
	out := Text(fixtureSegments(), timecode.FormatSRT, segment.DefaultOptions())

	assert.Contains(t, out, "00:00:00,000 --> 00:00:02,500")
	assert.Contains(t, out, "Hello world")
	assert.NotContains(t, out, "WEBVTT")
	assert.NotContains(t, out, "你好世界")
}

func TestTextVTT(t *testing.T) {
	out := Text(fixtureSegments(), timecode.FormatVTT, segment.DefaultOptions())

	assert.True(t, strings.HasPrefix(out, "WEBVTT\n"))
	assert.Contains(t, out, "00:00:00.000 --> 00:00:02.500")
}

func TestFilenameVariants(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		opts segment.Options
		want string
	}{
		{
			name: "original only",
			opts: segment.Options{IncludeOriginal: true},
			want: "movie_original_20260824-103000.srt",
		},
		{
			name: "translated only",
			opts: segment.Options{IncludeTranslation: true},
			want: "movie_translated_20260824-103000.srt",
		},
		{
			name: "bilingual below",
			opts: segment.Options{
				IncludeOriginal:     true,
				IncludeTranslation:  true,
				TranslationPosition: segment.TranslationBelow,
			},
			want: "movie_bilingual_20260824-103000.srt",
		},
		{
			name: "bilingual above",
			opts: segment.Options{
				IncludeOriginal:     true,
				IncludeTranslation:  true,
				TranslationPosition: segment.TranslationAbove,
			},
			want: "movie_bilingual-above_20260824-103000.srt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename("movie", timecode.FormatSRT, tt.opts, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilenameVTTExtension(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)
	got := Filename("movie", timecode.FormatVTT, segment.DefaultOptions(), now)
	assert.True(t, strings.HasSuffix(got, ".vtt"))
}

func TestVideoFilenameOrientation(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "clip_landscape_20260824-103000.mp4", VideoFilename("clip", 1280, 720, now))
	assert.Equal(t, "clip_portrait_20260824-103000.mp4", VideoFilename("clip", 720, 1280, now))
}

func TestDetectBase(t *testing.T) {
	assert.Equal(t, "movie", DetectBase("/tmp/out/movie.srt"))
	assert.Equal(t, "movie.en", DetectBase("movie.en.srt"))
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/nested/out.srt"

	err := WriteFile(path, fixtureSegments(), timecode.FormatSRT, segment.DefaultOptions())
	require.NoError(t, err)

	parsed := segment.Parse(readFile(t, path), timecode.FormatSRT)
	require.Len(t, parsed, 2)
	assert.Equal(t, "Hello world", parsed[0].Text)
	assert.InDelta(t, 2.5, parsed[0].End, 1e-9)
}

func TestASSStructure(t *testing.T) {
	out := NewASSWriter().ASS(fixtureSegments(), render.DefaultStyle())

	assert.Contains(t, out, "[Script Info]")
	assert.Contains(t, out, "[V4+ Styles]")
	assert.Contains(t, out, "[Events]")
	assert.Contains(t, out, "Dialogue: 0,0:00:00.00,0:00:02.50,Default,,0,0,0,,Hello world")
}

func TestASSBilingualLineBreak(t *testing.T) {
	style := render.DefaultStyle()
	style.ShowTranslation = true

	out := NewASSWriter().ASS(fixtureSegments(), style)
	assert.Contains(t, out, "Hello world\\N你好世界")
}

func TestASSKaraokeTags(t *testing.T) {
	style := render.DefaultStyle()
	style.Effect = anim.EffectKaraoke

	segs := []segment.Segment{{ID: 1, Start: 0, End: 1, Text: "abcd"}}
	out := NewASSWriter().ASS(segs, style)

	assert.Contains(t, out, "{\\k25}a{\\k25}b{\\k25}c{\\k25}d")
}

func TestASSKaraokeRemainderOnLastChar(t *testing.T) {
	// 1s over 3 chars: 33+33+34 centiseconds
	assert.Equal(t, "{\\k33}a{\\k33}b{\\k34}c", karaokeTags("abc", 1.0))
}

func TestASSColorInvertedAlpha(t *testing.T) {
	out := NewASSWriter().ASS(fixtureSegments(), render.DefaultStyle())
	// opaque white primary: zero ASS alpha, BGR order
	assert.Contains(t, out, "&H00FFFFFF")
}

func TestASSSkipsEmptySegments(t *testing.T) {
	style := render.DefaultStyle()
	segs := []segment.Segment{{ID: 1, Start: 0, End: 1}}
	out := NewASSWriter().ASS(segs, style)
	assert.NotContains(t, out, "Dialogue:")
}

func TestFrameCount(t *testing.T) {
	assert.Equal(t, 1, frameCount(0, 30))
	assert.Equal(t, 31, frameCount(1.0, 30))
	assert.Equal(t, 76, frameCount(2.5, 30))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subedit/subedit/internal/segment"
)

func TestCorrectSegmentsPositionalMapping(t *testing.T) {
	segments := []segment.Segment{
		{ID: 1, Start: 0, End: 1, Text: "你耗"},
		{ID: 2, Start: 1, End: 2, Text: "事界"},
	}

	out := CorrectSegments("你好。世界。", segments)
	require.Len(t, out, 2)

	assert.Equal(t, "你好。", out[0].Text)
	assert.Equal(t, "世界。", out[1].Text)

	// timings untouched
	assert.InDelta(t, 0.0, out[0].Start, 0.0005)
	assert.InDelta(t, 1.0, out[0].End, 0.0005)
	assert.InDelta(t, 1.0, out[1].Start, 0.0005)
	assert.InDelta(t, 2.0, out[1].End, 0.0005)
}

func TestCorrectSegmentsGreedyMatching(t *testing.T) {
	segments := []segment.Segment{
		{ID: 1, Start: 0, End: 2, Text: "the quick brown fox"},
		{ID: 2, Start: 2, End: 4, Text: "jumps over the dog"},
		{ID: 3, Start: 4, End: 6, Text: "completely unrelated line"},
	}

	// many more fragments than segments forces greedy matching
	text := "alpha.\nbeta.\ngamma.\ndelta.\nthe quick brown fox.\njumps over the lazy dog.\nepsilon.\nzeta."
	out := CorrectSegments(text, segments)
	require.Len(t, out, 3)

	assert.Equal(t, "the quick brown fox.", out[0].Text)
	assert.Equal(t, "jumps over the lazy dog.", out[1].Text)
	// nothing above threshold: original text kept
	assert.Equal(t, "completely unrelated line", out[2].Text)
}

func TestCorrectSegmentsGreedyConsumesFragmentsOnce(t *testing.T) {
	segments := []segment.Segment{
		{ID: 1, Start: 0, End: 1, Text: "hello there"},
		{ID: 2, Start: 1, End: 2, Text: "hello there"},
	}

	text := "one.\ntwo.\nthree.\nfour.\nfive.\nsix.\nhello there.\nseven."
	out := CorrectSegments(text, segments)

	// only one fragment matches; it may be used once
	assert.Equal(t, "hello there.", out[0].Text)
	assert.Equal(t, "hello there", out[1].Text)
}

func TestCorrectSegmentsDegenerateInput(t *testing.T) {
	segments := []segment.Segment{{ID: 1, Start: 0, End: 1, Text: "keep me"}}

	out := CorrectSegments("", segments)
	require.Len(t, out, 1)
	assert.Equal(t, "keep me", out[0].Text)

	assert.Empty(t, CorrectSegments("some text", nil))
}

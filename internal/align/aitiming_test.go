package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subedit/subedit/internal/segment"
)

func aiFixture() []segment.Segment {
	return []segment.Segment{
		{ID: 1, Start: 0, End: 2, Text: "welcome back everyone"},
		{ID: 2, Start: 2, End: 4.5, Text: "today we talk about subtitles"},
		{ID: 3, Start: 4.5, End: 7, Text: "timing is everything"},
		{ID: 4, Start: 7, End: 9, Text: "thanks for watching"},
	}
}

func TestAlignToTimingAnchorsCarryUserText(t *testing.T) {
	fragments := []string{
		"Welcome back, everyone!",
		"Today we talk about subtitles.",
		"Timing is everything.",
		"Thanks for watching!",
	}

	out := AlignToTiming(fragments, aiFixture())
	require.Len(t, out, 4)

	for i, seg := range out {
		assert.Equal(t, fragments[i], seg.Text, "user text carried")
		assert.Equal(t, i+1, seg.ID)
	}

	// AI timings carried over
	assert.InDelta(t, 0.0, out[0].Start, 0.0005)
	assert.InDelta(t, 2.0, out[0].End, 0.0005)
	assert.InDelta(t, 7.0, out[3].Start, 0.0005)
	assert.InDelta(t, 9.0, out[3].End, 0.0005)
}

func TestAlignToTimingInterpolatesBetweenAnchors(t *testing.T) {
	// fragments 0 and 3 anchor; 1 and 2 share no characters with anything
	fragments := []string{
		"welcome back everyone",
		"啊啊啊",
		"哦哦哦",
		"thanks for watching",
	}

	out := AlignToTiming(fragments, aiFixture())
	require.Len(t, out, 4)

	assert.InDelta(t, 0.0, out[0].Start, 0.0005)
	assert.InDelta(t, 9.0, out[3].End, 0.0005)

	// interpolated fragments land between the anchors, in order
	assert.GreaterOrEqual(t, out[1].Start, out[0].Start)
	assert.GreaterOrEqual(t, out[2].Start, out[1].Start)
	assert.LessOrEqual(t, out[2].End, out[3].End)
}

func TestAlignToTimingZeroAnchorsProportional(t *testing.T) {
	fragments := []string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛"}

	out := AlignToTiming(fragments, aiFixture())
	require.Len(t, out, 8)

	// aiIdx = floor(userIdx * 4 / 8)
	assert.InDelta(t, 0.0, out[0].Start, 0.0005)
	assert.InDelta(t, 0.0, out[1].Start, 0.0005)
	assert.InDelta(t, 2.0, out[2].Start, 0.0005)
	assert.InDelta(t, 7.0, out[7].Start, 0.0005)
}

func TestAlignToTimingClampedBorrowingOutsideAnchors(t *testing.T) {
	// only the middle fragment anchors; neighbors borrow adjacent timings
	fragments := []string{"ざざざ", "timing is everything", "ぺぺぺ"}

	out := AlignToTiming(fragments, aiFixture())
	require.Len(t, out, 3)

	assert.InDelta(t, 4.5, out[1].Start, 0.0005) // anchor at AI index 2
	assert.InDelta(t, 2.0, out[0].Start, 0.0005) // borrows AI index 1
	assert.InDelta(t, 7.0, out[2].Start, 0.0005) // borrows AI index 3
}

func TestAlignToTimingDegenerate(t *testing.T) {
	assert.Nil(t, AlignToTiming(nil, aiFixture()))
	assert.Nil(t, AlignToTiming([]string{"text"}, nil))
}

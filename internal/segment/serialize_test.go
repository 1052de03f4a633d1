package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bilingualFixture() []Segment {
	return []Segment{
		{ID: 1, Start: 0, End: 2, Text: "Hello", Translated: "你好"},
		{ID: 2, Start: 3, End: 5, Text: "World"},
	}
}

func TestSerializeSRTTranslationBelow(t *testing.T) {
	out := SerializeSRT(bilingualFixture(), Options{
		IncludeOriginal:     true,
		IncludeTranslation:  true,
		TranslationPosition: TranslationBelow,
	})

	assert.Contains(t, out, "Hello\n你好\n")
	assert.Contains(t, out, "World\n")
}

func TestSerializeSRTTranslationAbove(t *testing.T) {
	out := SerializeSRT(bilingualFixture(), Options{
		IncludeOriginal:     true,
		IncludeTranslation:  true,
		TranslationPosition: TranslationAbove,
	})

	assert.Contains(t, out, "你好\nHello\n")
}

func TestSerializeSRTTranslationOnly(t *testing.T) {
	out := SerializeSRT(bilingualFixture(), Options{
		IncludeTranslation:  true,
		TranslationPosition: TranslationBelow,
	})

	assert.NotContains(t, out, "Hello")
	assert.Contains(t, out, "你好")
	// second segment has no translation: header still emitted
	assert.Contains(t, out, "2\n00:00:03,000 --> 00:00:05,000\n")
}

func TestSerializeVTTHeader(t *testing.T) {
	out := SerializeVTT(bilingualFixture(), DefaultOptions())
	assert.True(t, strings.HasPrefix(out, "WEBVTT\n\n"))
	assert.Contains(t, out, "00:00:00.000 --> 00:00:02.000")
}

func TestSortAndRenumber(t *testing.T) {
	segments := []Segment{
		{ID: 7, Start: 10, End: 12, Text: "c"},
		{ID: 3, Start: 0, End: 2, Text: "a"},
		{ID: 9, Start: 5, End: 6, Text: "b"},
	}

	out := SortAndRenumber(segments)
	assert.Equal(t, []int{1, 2, 3}, []int{out[0].ID, out[1].ID, out[2].ID})
	assert.Equal(t, []string{"a", "b", "c"}, []string{out[0].Text, out[1].Text, out[2].Text})

	// input untouched
	assert.Equal(t, 7, segments[0].ID)
}

func TestActiveAt(t *testing.T) {
	segments := []Segment{
		{ID: 1, Start: 0, End: 2, Text: "a"},
		{ID: 2, Start: 1, End: 3, Text: "overlap"},
		{ID: 3, Start: 5, End: 6, Text: "b"},
	}

	// first containment match wins on overlap
	active := ActiveAt(segments, 1.5)
	assert.NotNil(t, active)
	assert.Equal(t, 1, active.ID)

	// end is exclusive
	assert.Nil(t, ActiveAt(segments, 4))
	assert.Nil(t, ActiveAt(segments, 6))
}

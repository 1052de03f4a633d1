package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityBoundsAndSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"hello world", "hello world"},
		{"hello world", "hella warld"},
		{"abc", "xyz"},
		{"", "something"},
		{"你好世界", "你好地球"},
	}

	for _, pair := range pairs {
		ab := Similarity(pair[0], pair[1])
		ba := Similarity(pair[1], pair[0])

		assert.Equal(t, ab, ba, "symmetry for %q / %q", pair[0], pair[1])
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)
	}
}

func TestSimilarityIdentity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("same text", "same text"))
	assert.Equal(t, 1.0, Similarity("", ""))
	// punctuation-only strings clean to empty: trivial match
	assert.Equal(t, 1.0, Similarity("...", "!!!"))
}

func TestSimilarityIgnoresCaseAndPunctuation(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Hello, World!", "hello world"))
	assert.Equal(t, 1.0, Similarity("a  b   c", "a b c"))
}

func TestSimilarityOrdering(t *testing.T) {
	// closer strings score higher
	near := Similarity("the quick brown fox", "the quick brown fix")
	far := Similarity("the quick brown fox", "lorem ipsum dolor")
	assert.Greater(t, near, far)
}

func TestCharOverlap(t *testing.T) {
	assert.Equal(t, 1.0, charOverlap("abc", "cba"))
	assert.Equal(t, 1.0, charOverlap("", ""))
	assert.Equal(t, 0.0, charOverlap("abc", "xyz"))

	// strips punctuation before comparing
	assert.Equal(t, 1.0, charOverlap("你好！", "你好"))

	partial := charOverlap("abcd", "abxy")
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 1.0)
}

package align

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Similarity scores how alike two strings are in [0,1], computed as
// 1 - editDistance/maxLen over cleaned text (punctuation replaced by
// spaces, case folded, whitespace collapsed). Two empty strings score 1.
func Similarity(a, b string) float64 {
	a = cleanForComparison(a)
	b = cleanForComparison(b)

	maxLen := runeLen(a)
	if l := runeLen(b); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}

	distance := levenshtein.ComputeDistance(a, b)
	return 1 - float64(distance)/float64(maxLen)
}

func cleanForComparison(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			sb.WriteRune(' ')
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return collapseSpaces(sb.String())
}

// charOverlap scores two strings by the share of runes in one that also
// occur in the other, over the larger cleaned length. Used for matching
// user fragments against AI transcript segments, where edit distance is
// too strict across paraphrases.
func charOverlap(a, b string) float64 {
	ra := keepWordRunes(a)
	rb := keepWordRunes(b)

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1
	}

	inB := make(map[rune]bool, len(rb))
	for _, r := range rb {
		inB[r] = true
	}

	overlap := 0
	for _, r := range ra {
		if inB[r] {
			overlap++
		}
	}
	return float64(overlap) / float64(maxLen)
}

// keepWordRunes strips everything but letters and digits (covers CJK
// ideographs as letters) and case-folds.
func keepWordRunes(s string) []rune {
	var out []rune
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, unicode.ToLower(r))
		}
	}
	return out
}

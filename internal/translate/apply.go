package translate

import (
	"strings"

	"github.com/subedit/subedit/internal/segment"
)

// Items builds the ordered translation payload from a segment list.
func Items(segments []segment.Segment) []TranslationItem {
	items := make([]TranslationItem, len(segments))
	for i, seg := range segments {
		items[i] = TranslationItem{Index: i, Text: seg.Text}
	}
	return items
}

// Apply writes translated texts back onto a copy of segments, matching
// results to segments by index. Providers occasionally return fewer or
// more results than requested; missing indices leave the segment
// untranslated and out-of-range indices are dropped.
func Apply(segments []segment.Segment, results []TranslationResult) []segment.Segment {
	out := segment.Clone(segments)
	for _, r := range results {
		if r.Index < 0 || r.Index >= len(out) {
			continue
		}
		out[r.Index].Translated = strings.TrimSpace(r.Text)
	}
	return out
}

package align

import (
	"sort"

	"github.com/subedit/subedit/internal/segment"
)

// anchorThreshold is the minimum character-overlap score for a
// (fragment, AI segment) pair to become an alignment anchor.
const anchorThreshold = 0.3

type anchor struct {
	fragIdx int
	aiIdx   int
}

// AlignToTiming carries the user's corrected fragments onto AI
// transcript timings. Confirmed high-overlap pairs become anchors;
// fragments between anchors are mapped onto the AI segments in between
// by proportional index interpolation, and fragments outside the anchor
// range borrow the nearest timing by clamped index arithmetic. With no
// anchors at all, plain proportional index mapping is used. The caller
// falls back to SplitToTimed when no AI segments exist.
func AlignToTiming(fragments []string, aiSegments []segment.Segment) []segment.Segment {
	if len(fragments) == 0 || len(aiSegments) == 0 {
		return nil
	}

	anchors := findAnchors(fragments, aiSegments)

	out := make([]segment.Segment, len(fragments))
	for i, frag := range fragments {
		aiIdx := mapFragmentIndex(i, len(fragments), len(aiSegments), anchors)
		out[i] = segment.Segment{
			ID:    i + 1,
			Start: aiSegments[aiIdx].Start,
			End:   aiSegments[aiIdx].End,
			Text:  frag,
		}
	}
	return out
}

// findAnchors greedily picks, per fragment in order, the highest
// scoring unused AI segment above the threshold.
func findAnchors(fragments []string, aiSegments []segment.Segment) []anchor {
	used := make([]bool, len(aiSegments))
	var anchors []anchor

	for i, frag := range fragments {
		bestIdx := -1
		bestScore := anchorThreshold
		for j := range aiSegments {
			if used[j] {
				continue
			}
			if score := charOverlap(frag, aiSegments[j].Text); score > bestScore {
				bestScore = score
				bestIdx = j
			}
		}
		if bestIdx >= 0 {
			used[bestIdx] = true
			anchors = append(anchors, anchor{fragIdx: i, aiIdx: bestIdx})
		}
	}

	sort.Slice(anchors, func(i, j int) bool {
		return anchors[i].fragIdx < anchors[j].fragIdx
	})
	return anchors
}

func mapFragmentIndex(fragIdx, fragCount, aiCount int, anchors []anchor) int {
	if len(anchors) == 0 {
		// simple proportional mapping
		return clampIndex(fragIdx*aiCount/fragCount, aiCount)
	}

	// exact anchor hit
	for _, a := range anchors {
		if a.fragIdx == fragIdx {
			return a.aiIdx
		}
	}

	first := anchors[0]
	if fragIdx < first.fragIdx {
		return clampIndex(first.aiIdx-(first.fragIdx-fragIdx), aiCount)
	}

	last := anchors[len(anchors)-1]
	if fragIdx > last.fragIdx {
		return clampIndex(last.aiIdx+(fragIdx-last.fragIdx), aiCount)
	}

	// between two anchors: proportional index interpolation
	for k := 0; k+1 < len(anchors); k++ {
		lo, hi := anchors[k], anchors[k+1]
		if fragIdx <= lo.fragIdx || fragIdx >= hi.fragIdx {
			continue
		}
		span := hi.fragIdx - lo.fragIdx
		offset := (fragIdx - lo.fragIdx) * (hi.aiIdx - lo.aiIdx) / span
		return clampIndex(lo.aiIdx+offset, aiCount)
	}

	return clampIndex(fragIdx*aiCount/fragCount, aiCount)
}

func clampIndex(idx, count int) int {
	if idx < 0 {
		return 0
	}
	if idx >= count {
		return count - 1
	}
	return idx
}

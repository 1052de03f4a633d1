package align

import (
	"github.com/subedit/subedit/internal/segment"
)

// similarityThreshold is the minimum score for a fragment to replace a
// segment's text during greedy matching.
const similarityThreshold = 0.3

// positionalTolerance is the relative fragment/segment count difference
// under which positional 1:1 mapping is used instead of similarity
// matching.
const positionalTolerance = 0.3

// CorrectSegments maps corrected free text back onto existing segments,
// replacing text only, never timings. When fragment and segment counts
// are close the mapping is positional; otherwise each segment greedily
// takes its most similar unused fragment, keeping its old text when
// nothing scores above the threshold. Degenerate input returns the
// segments unchanged.
func CorrectSegments(text string, segments []segment.Segment) []segment.Segment {
	fragments := SplitText(text)
	if len(fragments) == 0 || len(segments) == 0 {
		return segment.Clone(segments)
	}

	if countsComparable(len(fragments), len(segments)) {
		return correctPositional(fragments, segments)
	}
	return correctGreedy(fragments, segments)
}

func countsComparable(fragments, segments int) bool {
	larger := fragments
	if segments > larger {
		larger = segments
	}
	diff := fragments - segments
	if diff < 0 {
		diff = -diff
	}
	return float64(diff)/float64(larger) <= positionalTolerance
}

func correctPositional(fragments []string, segments []segment.Segment) []segment.Segment {
	out := segment.Clone(segments)
	for i := range out {
		idx := i * len(fragments) / len(out)
		out[i].Text = fragments[idx]
	}
	return out
}

// correctGreedy is segment-driven: each segment in original order scans
// all unused fragments for the best score. Deliberately not an optimal
// bipartite assignment; the greedy order is part of the contract.
func correctGreedy(fragments []string, segments []segment.Segment) []segment.Segment {
	out := segment.Clone(segments)
	used := make([]bool, len(fragments))

	for i := range out {
		bestIdx := -1
		bestScore := similarityThreshold
		for j, frag := range fragments {
			if used[j] {
				continue
			}
			if score := Similarity(out[i].Text, frag); score > bestScore {
				bestScore = score
				bestIdx = j
			}
		}
		if bestIdx >= 0 {
			out[i].Text = fragments[bestIdx]
			used[bestIdx] = true
		}
	}
	return out
}

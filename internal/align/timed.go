package align

import (
	"strings"

	"github.com/subedit/subedit/internal/segment"
)

// SplitOptions controls time allocation for SplitToTimed.
type SplitOptions struct {
	// Uniform gives every fragment totalDuration/n instead of the
	// complexity-weighted default.
	Uniform bool
	// MinDuration/MaxDuration clamp weighted allocations, in seconds.
	// Zero values take the defaults.
	MinDuration float64
	MaxDuration float64
}

const (
	defaultMinSegmentDuration = 1.0
	defaultMaxSegmentDuration = 6.0

	wordWeight  = 0.4
	punctWeight = 1.8

	// below this share of the total duration, weighted allocations are
	// stretched back out proportionally
	minCoverageRatio = 0.8
)

// SplitToTimed segments free text and allocates timing across
// totalDuration with no other timing information available. Blank text
// yields nil.
func SplitToTimed(text string, totalDuration float64, opts SplitOptions) []segment.Segment {
	fragments := SplitText(text)
	if len(fragments) == 0 || totalDuration <= 0 {
		return nil
	}

	var durations []float64
	if opts.Uniform {
		durations = uniformDurations(len(fragments), totalDuration)
	} else {
		durations = weightedDurations(fragments, totalDuration, opts)
	}

	segments := make([]segment.Segment, len(fragments))
	cursor := 0.0
	for i, frag := range fragments {
		segments[i] = segment.Segment{
			ID:    i + 1,
			Start: cursor,
			End:   cursor + durations[i],
			Text:  frag,
		}
		cursor += durations[i]
	}

	// floating point drift: pin the last end to the media duration when
	// allocation was meant to cover it fully
	if last := len(segments) - 1; segments[last].End > totalDuration {
		segments[last].End = totalDuration
	}

	return segments
}

func uniformDurations(n int, totalDuration float64) []float64 {
	per := totalDuration / float64(n)
	out := make([]float64, n)
	for i := range out {
		out[i] = per
	}
	return out
}

// weightedDurations distributes totalDuration proportionally to fragment
// complexity, clamps each into the [min,max] band, then rescales so the
// block neither spills past the total nor covers too little of it.
func weightedDurations(fragments []string, totalDuration float64, opts SplitOptions) []float64 {
	minDur := opts.MinDuration
	if minDur <= 0 {
		minDur = defaultMinSegmentDuration
	}
	maxDur := opts.MaxDuration
	if maxDur <= 0 {
		maxDur = defaultMaxSegmentDuration
	}

	weights := make([]float64, len(fragments))
	totalWeight := 0.0
	for i, frag := range fragments {
		weights[i] = complexity(frag)
		totalWeight += weights[i]
	}
	if totalWeight == 0 {
		return uniformDurations(len(fragments), totalDuration)
	}

	durations := make([]float64, len(fragments))
	allocated := 0.0
	for i := range fragments {
		d := totalDuration * weights[i] / totalWeight
		if d < minDur {
			d = minDur
		}
		if d > maxDur {
			d = maxDur
		}
		durations[i] = d
		allocated += d
	}

	if allocated > totalDuration || allocated < minCoverageRatio*totalDuration {
		scale := totalDuration / allocated
		for i := range durations {
			durations[i] *= scale
			// an upward stretch still respects the band; sparse text over
			// long media simply leaves the tail uncovered
			if scale > 1 && durations[i] > maxDur {
				durations[i] = maxDur
			}
		}
	}

	return durations
}

// complexity weighs a fragment by characters, words, and punctuation,
// approximating reading effort.
func complexity(frag string) float64 {
	chars := float64(runeLen(frag))
	words := float64(len(strings.Fields(frag)))

	punct := 0.0
	for _, r := range frag {
		if strings.ContainsRune(splitPunctuation, r) {
			punct++
		}
	}

	return chars + wordWeight*words + punctWeight*punct
}

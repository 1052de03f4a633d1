package segment

import "sort"

// Segment is a single timed subtitle entry. Translated is empty for
// monolingual segments.
type Segment struct {
	ID         int
	Start      float64 // seconds
	End        float64 // seconds
	Text       string
	Translated string
}

// Duration in seconds
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// Clone returns a deep copy of the segment list.
func Clone(segments []Segment) []Segment {
	if segments == nil {
		return nil
	}
	out := make([]Segment, len(segments))
	copy(out, segments)
	return out
}

// SortAndRenumber orders segments by ascending start time and assigns
// contiguous IDs 1..N. Called after every structural edit.
func SortAndRenumber(segments []Segment) []Segment {
	out := Clone(segments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	for i := range out {
		out[i].ID = i + 1
	}
	return out
}

// ActiveAt returns the first segment containing t, or nil. Overlapping
// segments are permitted by the model; first match wins.
func ActiveAt(segments []Segment, t float64) *Segment {
	for i := range segments {
		if t >= segments[i].Start && t < segments[i].End {
			return &segments[i]
		}
	}
	return nil
}

// FindByID returns the index of the segment with the given id, or -1.
func FindByID(segments []Segment, id int) int {
	for i := range segments {
		if segments[i].ID == id {
			return i
		}
	}
	return -1
}

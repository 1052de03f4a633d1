// Package history wraps the segment list with linear undo/redo stacks
// and a single-slot clipboard. All user-visible edits go through Set;
// transient drag previews use SetWithoutHistory and commit on release.
package history

import (
	"github.com/subedit/subedit/internal/segment"
)

// PlaceholderText is used for freshly inserted segments.
const PlaceholderText = "New subtitle"

// DefaultInsertDuration is the length of a freshly inserted segment.
const DefaultInsertDuration = 2.0

// Engine holds the editing history. Not safe for concurrent use; the
// editor is single event loop driven.
type Engine struct {
	past      [][]segment.Segment
	present   []segment.Segment
	future    [][]segment.Segment
	clipboard *segment.Segment
}

// NewEngine starts history at the given initial segment list.
func NewEngine(initial []segment.Segment) *Engine {
	return &Engine{present: segment.Clone(initial)}
}

// Segments returns the current snapshot.
func (e *Engine) Segments() []segment.Segment {
	return segment.Clone(e.present)
}

// Set installs a new snapshot as an undoable edit. Any redo branch is
// discarded.
func (e *Engine) Set(segments []segment.Segment) {
	e.past = append(e.past, e.present)
	e.present = segment.Clone(segments)
	e.future = nil
}

// SetWithoutHistory replaces the present snapshot without touching the
// undo/redo stacks. Used for live drag previews; only the final release
// commits through Set.
func (e *Engine) SetWithoutHistory(segments []segment.Segment) {
	e.present = segment.Clone(segments)
}

// Undo steps back one snapshot. No-op when there is nothing to undo.
func (e *Engine) Undo() {
	if len(e.past) == 0 {
		return
	}
	last := e.past[len(e.past)-1]
	e.past = e.past[:len(e.past)-1]
	e.future = append([][]segment.Segment{e.present}, e.future...)
	e.present = last
}

// Redo re-applies the most recently undone snapshot. No-op when the
// future is empty.
func (e *Engine) Redo() {
	if len(e.future) == 0 {
		return
	}
	next := e.future[0]
	e.future = e.future[1:]
	e.past = append(e.past, e.present)
	e.present = next
}

func (e *Engine) CanUndo() bool { return len(e.past) > 0 }
func (e *Engine) CanRedo() bool { return len(e.future) > 0 }

// Copy stores a deep copy of the segment in the single-slot clipboard,
// overwriting any previous content.
func (e *Engine) Copy(seg segment.Segment) {
	clone := seg
	e.clipboard = &clone
}

// HasClipboard reports whether a segment has been copied.
func (e *Engine) HasClipboard() bool { return e.clipboard != nil }

// Paste inserts the clipboard segment shifted one second later, after
// the segment with afterID when it exists, else appended at the end.
// No-op on an empty clipboard. Undoable.
func (e *Engine) Paste(afterID int) {
	if e.clipboard == nil {
		return
	}

	pasted := *e.clipboard
	pasted.Start += 1
	pasted.End += 1

	next := segment.Clone(e.present)
	if idx := segment.FindByID(next, afterID); idx >= 0 {
		next = append(next[:idx+1], append([]segment.Segment{pasted}, next[idx+1:]...)...)
	} else {
		next = append(next, pasted)
	}

	e.Set(segment.SortAndRenumber(next))
}

// Insert creates a placeholder segment at [at, at+duration]. A zero or
// negative duration falls back to the default. Undoable.
func (e *Engine) Insert(at, duration float64) {
	if duration <= 0 {
		duration = DefaultInsertDuration
	}
	if at < 0 {
		at = 0
	}

	next := append(segment.Clone(e.present), segment.Segment{
		Start: at,
		End:   at + duration,
		Text:  PlaceholderText,
	})

	e.Set(segment.SortAndRenumber(next))
}

// Delete removes the segment with the given id and renumbers. A missing
// id is a silent no-op. Undoable.
func (e *Engine) Delete(id int) {
	idx := segment.FindByID(e.present, id)
	if idx < 0 {
		return
	}

	next := segment.Clone(e.present)
	next = append(next[:idx], next[idx+1:]...)

	e.Set(segment.SortAndRenumber(next))
}

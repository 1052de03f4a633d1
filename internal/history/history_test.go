package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subedit/subedit/internal/segment"
)

func fixture() []segment.Segment {
	return []segment.Segment{
		{ID: 1, Start: 0, End: 2, Text: "one"},
		{ID: 2, Start: 3, End: 5, Text: "two"},
		{ID: 3, Start: 6, End: 8, Text: "three"},
	}
}

func TestUndoRestoresInitialSnapshot(t *testing.T) {
	initial := fixture()
	e := NewEngine(initial)

	// N mutations followed by N undos returns to the initial snapshot
	e.Delete(2)
	e.Insert(10, 2)
	e.Copy(e.Segments()[0])
	e.Paste(1)

	e.Undo()
	e.Undo()
	e.Undo()

	assert.Equal(t, initial, e.Segments())
	assert.False(t, e.CanUndo())
}

func TestRedoMirrorsUndo(t *testing.T) {
	e := NewEngine(fixture())

	e.Delete(1)
	afterDelete := e.Segments()

	e.Undo()
	assert.True(t, e.CanRedo())

	e.Redo()
	assert.Equal(t, afterDelete, e.Segments())
	assert.False(t, e.CanRedo())
}

func TestNewMutationClearsRedo(t *testing.T) {
	e := NewEngine(fixture())

	e.Delete(1)
	e.Undo()
	require.True(t, e.CanRedo())

	e.Insert(20, 2)
	assert.False(t, e.CanRedo())
}

func TestUndoRedoNoOpOnEmptyStacks(t *testing.T) {
	e := NewEngine(fixture())

	e.Undo()
	e.Redo()
	assert.Equal(t, fixture(), e.Segments())
}

func TestSetWithoutHistoryIsNotUndoable(t *testing.T) {
	e := NewEngine(fixture())

	preview := e.Segments()
	preview[0].Start = 0.5
	preview[0].End = 2.5
	e.SetWithoutHistory(preview)

	assert.False(t, e.CanUndo())
	assert.InDelta(t, 0.5, e.Segments()[0].Start, 0.0005)
}

func TestPasteShiftsOneSecondAndRenumbers(t *testing.T) {
	e := NewEngine(fixture())

	e.Copy(e.Segments()[0]) // [0,2] "one"
	e.Paste(1)

	segments := e.Segments()
	require.Len(t, segments, 4)

	// pasted copy lands at [1,3], sorted between "one" and "two"
	assert.Equal(t, "one", segments[1].Text)
	assert.InDelta(t, 1.0, segments[1].Start, 0.0005)
	assert.InDelta(t, 3.0, segments[1].End, 0.0005)

	for i, seg := range segments {
		assert.Equal(t, i+1, seg.ID)
	}
}

func TestPasteUnknownTargetAppends(t *testing.T) {
	e := NewEngine(fixture())

	e.Copy(e.Segments()[2]) // [6,8]
	e.Paste(99)

	segments := e.Segments()
	require.Len(t, segments, 4)
	assert.InDelta(t, 7.0, segments[3].Start, 0.0005)
}

func TestPasteEmptyClipboardNoOp(t *testing.T) {
	e := NewEngine(fixture())
	e.Paste(1)

	assert.Len(t, e.Segments(), 3)
	assert.False(t, e.CanUndo())
}

func TestInsertSortsAndRenumbers(t *testing.T) {
	e := NewEngine(fixture())

	e.Insert(2.5, 0) // default duration

	segments := e.Segments()
	require.Len(t, segments, 4)
	assert.Equal(t, PlaceholderText, segments[1].Text)
	assert.InDelta(t, 2.5, segments[1].Start, 0.0005)
	assert.InDelta(t, 4.5, segments[1].End, 0.0005)

	for i, seg := range segments {
		assert.Equal(t, i+1, seg.ID)
	}
}

func TestDeleteMissingIDNoOp(t *testing.T) {
	e := NewEngine(fixture())
	e.Delete(42)

	assert.Len(t, e.Segments(), 3)
	assert.False(t, e.CanUndo())
}

func TestDeleteRenumbers(t *testing.T) {
	e := NewEngine(fixture())
	e.Delete(2)

	segments := e.Segments()
	require.Len(t, segments, 2)
	assert.Equal(t, "one", segments[0].Text)
	assert.Equal(t, "three", segments[1].Text)
	assert.Equal(t, 1, segments[0].ID)
	assert.Equal(t, 2, segments[1].ID)
}

func TestCopyIsDeep(t *testing.T) {
	e := NewEngine(fixture())

	seg := e.Segments()[0]
	e.Copy(seg)

	// mutating the source after Copy must not affect the clipboard
	e.Delete(1)
	e.Paste(0)

	segments := e.Segments()
	found := false
	for _, s := range segments {
		if s.Text == "one" {
			found = true
		}
	}
	assert.True(t, found)
}

// Package timeline converts pointer input on a zoomable time axis into
// segment mutations dispatched through the history engine.
package timeline

import (
	"github.com/subedit/subedit/internal/history"
	"github.com/subedit/subedit/internal/segment"
)

// DragMode selects which edge of a segment a drag manipulates.
type DragMode string

const (
	DragMove        DragMode = "move"
	DragResizeStart DragMode = "resizeStart"
	DragResizeEnd   DragMode = "resizeEnd"
)

// MinSegmentDuration is the smallest duration a resize may leave.
const MinSegmentDuration = 0.1

const (
	MinZoom  = 1.0
	MaxZoom  = 10.0
	ZoomStep = 0.5
)

// drag captures the pointer and segment state at pointer-down
type drag struct {
	segmentID   int
	mode        DragMode
	anchorX     float64
	anchorStart float64
	anchorEnd   float64
	// snapshot before any preview was applied, so the commit pushes the
	// pre-drag state onto the undo stack
	before []segment.Segment
}

// Menu describes an open context menu, carrying either a target segment
// or a raw timestamp.
type Menu struct {
	SegmentID int     // 0 when the menu targets empty track
	Time      float64 // raw timestamp under the pointer
}

// Controller is the timeline interaction state machine. Single event
// loop driven, like the rest of the editor.
type Controller struct {
	engine        *history.Engine
	trackWidthPx  float64
	totalDuration float64
	zoom          float64

	dragging   *drag
	dragMoved  bool
	selectedID int
	playhead   float64
	menu       *Menu
}

func NewController(engine *history.Engine, trackWidthPx, totalDuration float64) *Controller {
	return &Controller{
		engine:        engine,
		trackWidthPx:  trackWidthPx,
		totalDuration: totalDuration,
		zoom:          MinZoom,
	}
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging != nil }

// SelectedID returns the currently selected segment id, 0 for none.
func (c *Controller) SelectedID() int { return c.selectedID }

// Playhead returns the current playback position in seconds.
func (c *Controller) Playhead() float64 { return c.playhead }

// Menu returns the open context menu, or nil.
func (c *Controller) Menu() *Menu { return c.menu }

// Zoom returns the current zoom factor.
func (c *Controller) Zoom() float64 { return c.zoom }

// SetZoom clamps to [1x,10x] on the 0.5 step grid. Zoom scales only the
// rendered track width, never the timing math.
func (c *Controller) SetZoom(zoom float64) {
	steps := int(zoom/ZoomStep + 0.5)
	zoom = float64(steps) * ZoomStep
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	c.zoom = zoom
}

// PointerDown starts a drag on the given segment in the given mode and
// selects it. Unknown ids are ignored.
func (c *Controller) PointerDown(segmentID int, mode DragMode, pointerX float64) {
	segments := c.engine.Segments()
	idx := segment.FindByID(segments, segmentID)
	if idx < 0 {
		return
	}

	c.menu = nil
	c.selectedID = segmentID
	c.dragMoved = false
	c.dragging = &drag{
		segmentID:   segmentID,
		mode:        mode,
		anchorX:     pointerX,
		anchorStart: segments[idx].Start,
		anchorEnd:   segments[idx].End,
		before:      segments,
	}
}

// PointerMove applies the drag delta as a live, non-undoable preview.
func (c *Controller) PointerMove(pointerX float64) {
	if c.dragging == nil || c.trackWidthPx <= 0 {
		return
	}

	deltaTime := (pointerX - c.dragging.anchorX) / c.trackWidthPx * c.totalDuration
	c.dragMoved = true

	segments := c.engine.Segments()
	idx := segment.FindByID(segments, c.dragging.segmentID)
	if idx < 0 {
		return
	}

	start, end := c.applyDelta(deltaTime)
	segments[idx].Start = start
	segments[idx].End = end

	c.engine.SetWithoutHistory(segments)
}

// applyDelta computes the clamped start/end for the current drag mode.
func (c *Controller) applyDelta(deltaTime float64) (float64, float64) {
	d := c.dragging
	switch d.mode {
	case DragResizeStart:
		start := clamp(d.anchorStart+deltaTime, 0, d.anchorEnd-MinSegmentDuration)
		return start, d.anchorEnd

	case DragResizeEnd:
		end := clamp(d.anchorEnd+deltaTime, d.anchorStart+MinSegmentDuration, c.totalDuration)
		return d.anchorStart, end

	default: // DragMove
		start := d.anchorStart + deltaTime
		end := d.anchorEnd + deltaTime
		if start < 0 {
			end -= start
			start = 0
		}
		if end > c.totalDuration {
			overflow := end - c.totalDuration
			start -= overflow
			end = c.totalDuration
			if start < 0 {
				start = 0
			}
		}
		return start, end
	}
}

// PointerUp commits the drag: the already-applied preview values become
// the undoable snapshot.
func (c *Controller) PointerUp() {
	c.finishDrag()
}

// PointerLeave is treated like a release.
func (c *Controller) PointerLeave() {
	c.finishDrag()
}

func (c *Controller) finishDrag() {
	if c.dragging == nil {
		return
	}
	if c.dragMoved {
		// the preview already holds the final values; rewind to the
		// pre-drag snapshot and re-commit through the undoable path so
		// the whole drag is exactly one history entry
		final := c.engine.Segments()
		c.engine.SetWithoutHistory(c.dragging.before)
		c.engine.Set(final)
	}
	c.dragging = nil
	c.dragMoved = false
}

// ClickEmpty seeks playback to the clicked time and clears the
// selection. Suppressed while a drag is in progress.
func (c *Controller) ClickEmpty(pointerX float64) {
	if c.dragging != nil || c.trackWidthPx <= 0 {
		return
	}
	c.playhead = clamp(pointerX/c.trackWidthPx*c.totalDuration, 0, c.totalDuration)
	c.selectedID = 0
	c.menu = nil
}

// RightClick opens a context menu for a segment (id > 0) or a raw
// track position.
func (c *Controller) RightClick(segmentID int, pointerX float64) {
	t := 0.0
	if c.trackWidthPx > 0 {
		t = clamp(pointerX/c.trackWidthPx*c.totalDuration, 0, c.totalDuration)
	}
	c.menu = &Menu{SegmentID: segmentID, Time: t}
}

// CloseMenu dismisses the context menu; called on any outside click.
func (c *Controller) CloseMenu() {
	c.menu = nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package render draws one subtitle frame onto a canvas, shared by
// live preview rendering and per-frame video export.
package render

import "image/color"

// Shadow describes a drop shadow applied to a text fill pass.
type Shadow struct {
	Color   color.Color
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// Canvas is the drawing surface DrawFrame targets. Implementations
// rasterize (ImageCanvas) or record operations (tests).
type Canvas interface {
	// MeasureText returns the rendered width of text in pixels at the
	// given font size.
	MeasureText(text string, size float64) float64

	// FillRoundedRect fills a rounded rectangle.
	FillRoundedRect(x, y, w, h, radius float64, col color.Color)

	// FillText fills text at the baseline-left position. A non-nil
	// shadow is drawn as part of this single fill pass.
	FillText(text string, x, y, size float64, col color.Color, shadow *Shadow)

	// StrokeText outlines text without filling it.
	StrokeText(text string, x, y, size float64, col color.Color, width float64)
}

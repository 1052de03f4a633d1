package render

import (
	"image/color"

	"github.com/subedit/subedit/internal/anim"
	"github.com/subedit/subedit/internal/segment"
)

// Position anchors the subtitle block vertically.
type Position string

const (
	PositionTop    Position = "top"
	PositionCenter Position = "center"
	PositionBottom Position = "bottom"
)

// Style is the visual configuration for subtitle rendering.
type Style struct {
	FontSize       float64
	TextColor      color.Color
	HighlightColor color.Color
	PanelColor     color.Color

	Effect anim.Effect
	Speed  int

	Position Position

	ShadowEnabled bool
	ShadowColor   color.Color

	StrokeEnabled bool
	StrokeColor   color.Color
	StrokeWidth   float64

	ShowOriginal        bool
	ShowTranslation     bool
	TranslationPosition segment.TranslationPosition
}

// DefaultStyle is white bottom-anchored text on a translucent panel.
func DefaultStyle() Style {
	return Style{
		FontSize:       32,
		TextColor:      color.White,
		HighlightColor: color.RGBA{R: 255, G: 215, B: 0, A: 255},
		PanelColor:     color.RGBA{A: 160},
		Effect:         anim.EffectNone,
		Speed:          5,
		Position:       PositionBottom,
		ShadowColor:    color.RGBA{A: 200},
		StrokeColor:    color.Black,
		StrokeWidth:    2,
		ShowOriginal:   true,
		TranslationPosition: segment.TranslationBelow,
	}
}

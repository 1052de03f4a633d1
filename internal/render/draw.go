package render

import (
	"github.com/subedit/subedit/internal/anim"
	"github.com/subedit/subedit/internal/segment"
)

const (
	lineHeightFactor = 1.4
	interLineGap     = 10.0
	panelPadding     = 16.0
	panelRadius      = 8.0
	topMargin        = 40.0
	// bottom anchored blocks keep clear of on-screen playback controls
	bottomMargin = 80.0
	// the background panel never exceeds this share of the canvas width
	maxPanelWidthRatio = 0.85
)

// line is one laid-out text row with its animation state.
type line struct {
	frame anim.Frame
	width float64
}

// DrawFrame renders a segment at currentTime onto the canvas. Each text
// line (original and translation, ordered by the style's translation
// position) is animated independently through the animation engine.
func DrawFrame(c Canvas, seg segment.Segment, style Style, canvasW, canvasH float64, currentTime float64) {
	texts := visibleTexts(seg, style)
	if len(texts) == 0 {
		return
	}

	elapsed := currentTime - seg.Start
	duration := seg.Duration()

	lines := make([]line, 0, len(texts))
	maxWidth := 0.0
	for _, text := range texts {
		frame := anim.Render(text, style.Effect, elapsed, duration, style.Speed)
		width := c.MeasureText(frame.Visible, style.FontSize)
		if width > maxWidth {
			maxWidth = width
		}
		lines = append(lines, line{frame: frame, width: width})
	}

	lineHeight := style.FontSize * lineHeightFactor
	blockW := maxWidth + 2*panelPadding
	if max := canvasW * maxPanelWidthRatio; blockW > max {
		blockW = max
	}
	blockH := float64(len(lines))*lineHeight +
		float64(len(lines)-1)*interLineGap + 2*panelPadding

	blockX := (canvasW - blockW) / 2
	blockY := blockYFor(style.Position, canvasH, blockH)

	c.FillRoundedRect(blockX, blockY, blockW, blockH, panelRadius, style.PanelColor)

	y := blockY + panelPadding + lineHeight - (lineHeight-style.FontSize)/2
	for _, ln := range lines {
		drawLine(c, ln, style, canvasW, y)
		y += lineHeight + interLineGap
	}
}

// visibleTexts returns up to two lines in display order.
func visibleTexts(seg segment.Segment, style Style) []string {
	var texts []string

	translated := style.ShowTranslation && seg.Translated != ""
	if translated && style.TranslationPosition == segment.TranslationAbove {
		texts = append(texts, seg.Translated)
	}
	if style.ShowOriginal && seg.Text != "" {
		texts = append(texts, seg.Text)
	}
	if translated && style.TranslationPosition != segment.TranslationAbove {
		texts = append(texts, seg.Translated)
	}
	return texts
}

func blockYFor(position Position, canvasH, blockH float64) float64 {
	switch position {
	case PositionTop:
		return topMargin
	case PositionCenter:
		return (canvasH - blockH) / 2
	default:
		return canvasH - blockH - bottomMargin
	}
}

// drawLine draws one animated line: stroke pass when enabled, then
// exactly one fill pass, through the shadow when the shadow is on.
// Filling both through the shadow pass and plainly would double-draw.
func drawLine(c Canvas, ln line, style Style, canvasW, baselineY float64) {
	x := (canvasW-ln.width)/2 + ln.frame.OffsetPercent/100*canvasW/2

	var shadow *Shadow
	if style.ShadowEnabled {
		shadow = &Shadow{Color: style.ShadowColor, Blur: 4, OffsetX: 2, OffsetY: 2}
	}

	if ln.frame.Highlighted != "" || style.Effect == anim.EffectKaraoke {
		drawKaraokeLine(c, ln, style, x, baselineY, shadow)
		return
	}

	if style.StrokeEnabled {
		c.StrokeText(ln.frame.Visible, x, baselineY, style.FontSize, style.StrokeColor, style.StrokeWidth)
	}
	c.FillText(ln.frame.Visible, x, baselineY, style.FontSize, style.TextColor, shadow)
}

// drawKaraokeLine splits the text into a highlighted prefix and a
// normal-colored suffix.
func drawKaraokeLine(c Canvas, ln line, style Style, x, baselineY float64, shadow *Shadow) {
	prefix := ln.frame.Highlighted
	suffix := ln.frame.Visible[len(prefix):]
	prefixWidth := c.MeasureText(prefix, style.FontSize)

	if style.StrokeEnabled {
		c.StrokeText(ln.frame.Visible, x, baselineY, style.FontSize, style.StrokeColor, style.StrokeWidth)
	}
	if prefix != "" {
		c.FillText(prefix, x, baselineY, style.FontSize, style.HighlightColor, shadow)
	}
	if suffix != "" {
		c.FillText(suffix, x+prefixWidth, baselineY, style.FontSize, style.TextColor, shadow)
	}
}

package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/subedit/subedit/internal/anim"
	"github.com/subedit/subedit/internal/render"
	"github.com/subedit/subedit/internal/segment"
)

// ToStyle converts the serialized style into the renderer's form.
// Unparseable colors fall back to the corresponding default.
func (c StyleConfig) ToStyle() render.Style {
	style := render.DefaultStyle()

	if c.FontSize > 0 {
		style.FontSize = c.FontSize
	}
	style.TextColor = parseHexColor(c.TextColor, style.TextColor)
	style.HighlightColor = parseHexColor(c.HighlightColor, style.HighlightColor)
	style.PanelColor = parseHexColor(c.PanelColor, style.PanelColor)

	style.Effect = parseEffect(c.Effect)
	if c.Speed >= anim.MinSpeed && c.Speed <= anim.MaxSpeed {
		style.Speed = c.Speed
	}

	switch c.Position {
	case "top":
		style.Position = render.PositionTop
	case "center":
		style.Position = render.PositionCenter
	case "bottom":
		style.Position = render.PositionBottom
	}

	style.ShadowEnabled = c.ShadowEnabled
	style.ShadowColor = parseHexColor(c.ShadowColor, style.ShadowColor)

	style.StrokeEnabled = c.StrokeEnabled
	style.StrokeColor = parseHexColor(c.StrokeColor, style.StrokeColor)
	if c.StrokeWidth > 0 {
		style.StrokeWidth = c.StrokeWidth
	}

	style.ShowOriginal = c.ShowOriginal
	style.ShowTranslation = c.ShowTranslation
	if c.TranslationPosition == "above" {
		style.TranslationPosition = segment.TranslationAbove
	} else {
		style.TranslationPosition = segment.TranslationBelow
	}

	return style
}

func parseEffect(name string) anim.Effect {
	switch name {
	case "typing":
		return anim.EffectTyping
	case "scroll":
		return anim.EffectScroll
	case "karaoke":
		return anim.EffectKaraoke
	default:
		return anim.EffectNone
	}
}

// parseHexColor reads #RGB, #RRGGBB and #RRGGBBAA notations.
func parseHexColor(s string, fallback color.Color) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	var r, g, b uint8
	a := uint8(255)

	switch len(s) {
	case 3:
		expanded := fmt.Sprintf("%c%c%c%c%c%c", s[0], s[0], s[1], s[1], s[2], s[2])
		return parseHexColor(expanded, fallback)
	case 6, 8:
		v, err := strconv.ParseUint(s[:6], 16, 32)
		if err != nil {
			return fallback
		}
		r = uint8(v >> 16)
		g = uint8(v >> 8)
		b = uint8(v)
		if len(s) == 8 {
			av, err := strconv.ParseUint(s[6:8], 16, 16)
			if err != nil {
				return fallback
			}
			a = uint8(av)
		}
	default:
		return fallback
	}

	return color.RGBA{R: r, G: g, B: b, A: a}
}

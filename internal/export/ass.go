package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/subedit/subedit/internal/anim"
	"github.com/subedit/subedit/internal/render"
	"github.com/subedit/subedit/internal/segment"
)

// ASSWriter emits Advanced SubStation Alpha output carrying the editor's
// visual style, so external players reproduce the styled preview.
type ASSWriter struct {
	Title    string
	FontName string
}

func NewASSWriter() *ASSWriter {
	return &ASSWriter{
		Title:    "subedit export",
		FontName: "Arial",
	}
}

// ASS renders segments as a complete ASS script. When the style uses the
// karaoke effect, each dialogue line carries per-character \k timing tags
// spread over the full cue duration.
func (w *ASSWriter) ASS(segments []segment.Segment, style render.Style) string {
	var sb strings.Builder

	sb.WriteString("[Script Info]\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", w.Title))
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("Collisions: Normal\n")
	sb.WriteString("PlayDepth: 0\n\n")

	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")

	outline := 0.0
	if style.StrokeEnabled {
		outline = style.StrokeWidth
	}
	shadow := 0.0
	if style.ShadowEnabled {
		shadow = 2.0
	}
	sb.WriteString(fmt.Sprintf(
		"Style: Default,%s,%d,%s,%s,%s,&H80000000,0,0,0,0,100,100,0,0,1,%.0f,%.0f,%s,10,10,10,1\n\n",
		w.FontName,
		int(style.FontSize),
		assColor(style.TextColor),
		assColor(style.HighlightColor),
		assColor(style.StrokeColor),
		outline,
		shadow,
		assAlignment(style.Position),
	))

	sb.WriteString("[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

	for _, seg := range segments {
		text := dialogueText(seg, style)
		if text == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
			assTimestamp(seg.Start),
			assTimestamp(seg.End),
			text))
	}

	return sb.String()
}

func dialogueText(seg segment.Segment, style render.Style) string {
	var lines []string

	translated := style.ShowTranslation && seg.Translated != ""
	if translated && style.TranslationPosition == segment.TranslationAbove {
		lines = append(lines, escapeASS(seg.Translated))
	}
	if style.ShowOriginal && seg.Text != "" {
		original := escapeASS(seg.Text)
		if style.Effect == anim.EffectKaraoke {
			original = karaokeTags(original, seg.Duration())
		}
		lines = append(lines, original)
	}
	if translated && style.TranslationPosition != segment.TranslationAbove {
		lines = append(lines, escapeASS(seg.Translated))
	}

	return strings.Join(lines, "\\N")
}

// karaokeTags prefixes every character with a \k tag whose duration is
// expressed in centiseconds. The final character absorbs the rounding
// remainder so the tags sum to the cue duration.
func karaokeTags(text string, duration float64) string {
	runes := []rune(text)
	if len(runes) == 0 || duration <= 0 {
		return text
	}

	totalCentis := int(duration * 100)
	perChar := totalCentis / len(runes)

	var sb strings.Builder
	for i, r := range runes {
		centis := perChar
		if i == len(runes)-1 {
			centis = totalCentis - perChar*(len(runes)-1)
		}
		sb.WriteString(fmt.Sprintf("{\\k%d}", centis))
		sb.WriteRune(r)
	}
	return sb.String()
}

// assTimestamp renders H:MM:SS.CC with centisecond precision.
func assTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalCentis := int(seconds*100 + 0.5)
	h := totalCentis / 360000
	m := totalCentis / 6000 % 60
	s := totalCentis / 100 % 60
	cs := totalCentis % 100
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
}

// assColor renders &HAABBGGRR, the byte order ASS expects.
func assColor(c color.Color) string {
	if c == nil {
		return "&H00FFFFFF"
	}
	r, g, b, a := c.RGBA()
	alpha := 255 - uint8(a>>8) // ASS alpha is inverted
	return fmt.Sprintf("&H%02X%02X%02X%02X", alpha, uint8(b>>8), uint8(g>>8), uint8(r>>8))
}

func assAlignment(pos render.Position) string {
	switch pos {
	case render.PositionTop:
		return "8"
	case render.PositionCenter:
		return "5"
	default:
		return "2"
	}
}

func escapeASS(text string) string {
	return strings.ReplaceAll(text, "\n", "\\N")
}

// Package anim computes animated subtitle display state as a pure
// function of elapsed time. Live playback rendering and offline export
// frame rendering call the same function with their own clocks; there
// are no timers and no hidden state here.
package anim

import "math"

// Effect is the animated-reveal mode for a segment's text.
type Effect string

const (
	EffectNone    Effect = "none"
	EffectTyping  Effect = "typing"
	EffectScroll  Effect = "scroll"
	EffectKaraoke Effect = "karaoke"
)

const (
	MinSpeed = 1
	MaxSpeed = 10
)

// Frame is the display state of one text line at one instant.
type Frame struct {
	// Visible is the portion of the text currently shown.
	Visible string
	// Highlighted is the karaoke prefix drawn in the highlight color;
	// empty for other effects. Visible always carries the full text for
	// karaoke, split as Highlighted + remainder.
	Highlighted string
	// OffsetPercent is the horizontal offset for scroll, 100 = fully
	// off-screen right, 0 = centered.
	OffsetPercent float64
	// Progress in [0,1] of the effect window.
	Progress float64
	// Done is set once the effect has fully played out.
	Done bool
}

// Render computes the display state for text under the given effect.
// elapsed is currentTime - segmentStart; duration is the segment
// length; speed is 1 (slow) to 10 (fast). Pure: all time comes in as
// parameters.
func Render(text string, effect Effect, elapsed, duration float64, speed int) Frame {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}

	switch effect {
	case EffectTyping:
		return renderTyping(text, elapsed, duration, speed)
	case EffectScroll:
		return renderScroll(text, elapsed, duration, speed)
	case EffectKaraoke:
		return renderKaraoke(text, elapsed, duration)
	default:
		return Frame{Visible: text, Progress: 1, Done: true}
	}
}

// typing reveals characters over a window that shrinks with speed:
// speed 10 uses 20% of the segment, speed 1 about 83%.
func renderTyping(text string, elapsed, duration float64, speed int) Frame {
	// (90-7s)/100 keeps the boundary exact: at speed 10 a 4s segment
	// finishes at precisely 0.8s, not a hair after
	window := duration * float64(90-7*speed) / 100
	progress := progressIn(elapsed, window)

	runes := []rune(text)
	visible := int(math.Floor(float64(len(runes)) * progress))
	if visible > len(runes) {
		visible = len(runes)
	}

	return Frame{
		Visible:  string(runes[:visible]),
		Progress: progress,
		Done:     progress >= 1,
	}
}

// scroll slides the text in from the right with a cubic ease-out.
func renderScroll(text string, elapsed, duration float64, speed int) Frame {
	// (110-9s)/200, exact at the window boundary like typing
	window := duration * float64(110-9*speed) / 200
	progress := progressIn(elapsed, window)
	eased := 1 - math.Pow(1-progress, 3)

	return Frame{
		Visible:       text,
		OffsetPercent: 100 * (1 - eased),
		Progress:      progress,
		Done:          progress >= 1,
	}
}

// karaoke highlights a growing prefix across the full segment window,
// ignoring speed.
func renderKaraoke(text string, elapsed, duration float64) Frame {
	progress := progressIn(elapsed, duration)

	runes := []rune(text)
	split := int(math.Floor(float64(len(runes)) * progress))
	if split > len(runes) {
		split = len(runes)
	}

	return Frame{
		Visible:     text,
		Highlighted: string(runes[:split]),
		Progress:    progress,
		Done:        progress >= 1,
	}
}

func progressIn(elapsed, window float64) float64 {
	if window <= 0 {
		return 1
	}
	p := elapsed / window
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

package transcribe

import (
	"strings"

	"github.com/subedit/subedit/internal/segment"
)

// GroupOptions bound how many words one subtitle cue may hold.
type GroupOptions struct {
	MaxWords       int     // cue closes at this word count
	MaxDuration    float64 // seconds; cue closes when it spans this long
	PauseThreshold float64 // seconds of silence that closes a cue
}

func DefaultGroupOptions() GroupOptions {
	return GroupOptions{
		MaxWords:       12,
		MaxDuration:    5.0,
		PauseThreshold: 0.5,
	}
}

const sentenceEnders = ".!?。！？…"

// GroupWords folds a word stream into subtitle segments. A cue closes on
// sentence-ending punctuation, on a silence gap longer than the pause
// threshold, or when it reaches the word-count or duration cap.
func GroupWords(words []Word, opts GroupOptions) []segment.Segment {
	if opts.MaxWords <= 0 {
		opts.MaxWords = DefaultGroupOptions().MaxWords
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = DefaultGroupOptions().MaxDuration
	}
	if opts.PauseThreshold <= 0 {
		opts.PauseThreshold = DefaultGroupOptions().PauseThreshold
	}

	var segments []segment.Segment
	var current []Word

	flush := func() {
		if len(current) == 0 {
			return
		}
		segments = append(segments, segment.Segment{
			Start: current[0].Start,
			End:   current[len(current)-1].End,
			Text:  joinWords(current),
		})
		current = nil
	}

	for i, word := range words {
		if strings.TrimSpace(word.Text) == "" {
			continue
		}
		current = append(current, word)

		boundary := endsSentence(word.Text) ||
			len(current) >= opts.MaxWords ||
			word.End-current[0].Start >= opts.MaxDuration
		if !boundary && i+1 < len(words) {
			boundary = words[i+1].Start-word.End > opts.PauseThreshold
		}
		if boundary {
			flush()
		}
	}
	flush()

	return segment.SortAndRenumber(segments)
}

func endsSentence(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	runes := []rune(trimmed)
	return strings.ContainsRune(sentenceEnders, runes[len(runes)-1])
}

// Package align turns free-form text into subtitle fragments and maps
// them onto timing information: existing segment timings, AI word
// timings, or plain proportional allocation.
package align

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// lines longer than this are re-split on punctuation
	longLineThreshold = 80
	// chunk width when re-splitting an over-long line
	longLineChunkWidth = 45
	// chunk width for the no-punctuation hard-break fallback
	hardBreakChunkWidth = 40
	// how far back from a chunk boundary to look for a space
	spaceLookback = 10
)

var listMarkerRegex = regexp.MustCompile(`^\s*(?:[-*•·]+|\(?\d+[.)、]\s)\s*`)

// splitPunctuation are the sentence/clause boundaries fragments break on.
const splitPunctuation = "。！？；，、.!?;,"

// SplitText normalizes raw pasted text and splits it into subtitle
// fragments. Explicit line breaks are the primary split points;
// sentence punctuation is next; fixed-width chunking is the final
// fallback. Non-empty input always yields at least one fragment;
// blank input yields nil.
func SplitText(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = listMarkerRegex.ReplaceAllString(line, "")
		line = collapseSpaces(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	if len(lines) > 1 {
		var out []string
		for _, line := range lines {
			out = append(out, splitLongLine(line)...)
		}
		return out
	}

	text := lines[0]
	if containsSplitPunctuation(text) {
		return splitOnPunctuation(text)
	}
	return chunk(text, hardBreakChunkWidth)
}

// splitLongLine keeps short lines whole and re-splits over-long ones on
// punctuation, chunking any piece that is still too long.
func splitLongLine(line string) []string {
	if runeLen(line) <= longLineThreshold {
		return []string{line}
	}

	var pieces []string
	if containsSplitPunctuation(line) {
		pieces = splitOnPunctuation(line)
	} else {
		pieces = []string{line}
	}

	var out []string
	for _, piece := range pieces {
		if runeLen(piece) > longLineThreshold {
			out = append(out, chunk(piece, longLineChunkWidth)...)
		} else {
			out = append(out, piece)
		}
	}
	return out
}

// splitOnPunctuation breaks text after each sentence/clause mark,
// keeping the mark attached to its fragment. A fragment that is only
// punctuation is merged into the previous one, never emitted alone.
func splitOnPunctuation(text string) []string {
	var fragments []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if strings.ContainsRune(splitPunctuation, r) {
			appendFragment(&fragments, current.String())
			current.Reset()
		}
	}
	appendFragment(&fragments, current.String())

	// punctuation-only input has nothing to merge into; keep it whole
	// rather than returning nothing
	if len(fragments) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			fragments = append(fragments, trimmed)
		}
	}

	return fragments
}

func appendFragment(fragments *[]string, frag string) {
	frag = strings.TrimSpace(frag)
	if frag == "" {
		return
	}
	if isPunctuationOnly(frag) && len(*fragments) > 0 {
		(*fragments)[len(*fragments)-1] += frag
		return
	}
	if isPunctuationOnly(frag) {
		return
	}
	*fragments = append(*fragments, frag)
}

// chunk cuts text into fixed-width rune chunks, preferring to cut at a
// space shortly before the boundary.
func chunk(text string, width int) []string {
	runes := []rune(text)
	if len(runes) <= width {
		return []string{strings.TrimSpace(text)}
	}

	var out []string
	for len(runes) > width {
		cut := width
		for back := 0; back < spaceLookback && cut-back > 0; back++ {
			if unicode.IsSpace(runes[cut-back-1]) {
				cut -= back + 1
				break
			}
		}
		if cut == 0 {
			cut = width
		}
		piece := strings.TrimSpace(string(runes[:cut]))
		if piece != "" {
			out = append(out, piece)
		}
		runes = runes[cut:]
	}
	if rest := strings.TrimSpace(string(runes)); rest != "" {
		out = append(out, rest)
	}
	return out
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func containsSplitPunctuation(s string) bool {
	return strings.ContainsAny(s, splitPunctuation)
}

func isPunctuationOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func runeLen(s string) int {
	return len([]rune(s))
}

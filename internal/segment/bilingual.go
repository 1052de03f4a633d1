package segment

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// NormalizeBilingual detects cues whose lines mix two languages and
// moves the secondary-language line into the Translated field. It runs
// once at import time; the Translated field is the only bilingual
// representation afterwards.
func NormalizeBilingual(segments []Segment) []Segment {
	primary := DetectLanguage(segments)
	if primary == language.Und {
		return segments
	}

	out := Clone(segments)
	for i := range out {
		if out[i].Translated != "" {
			continue
		}
		lines := strings.Split(out[i].Text, "\n")
		if len(lines) < 2 {
			continue
		}

		var own, other []string
		for _, line := range lines {
			if lineLanguage(line) == primary {
				own = append(own, line)
			} else {
				other = append(other, line)
			}
		}
		// only split clean two-language cues; anything murkier is left alone
		if len(own) == 0 || len(other) == 0 {
			continue
		}

		out[i].Text = strings.Join(own, "\n")
		out[i].Translated = strings.Join(other, "\n")
	}
	return out
}

// DetectLanguage returns the dominant language across all segment text.
func DetectLanguage(segments []Segment) language.Tag {
	if len(segments) == 0 {
		return language.Und
	}

	counts := make(map[language.Tag]int)
	for _, seg := range segments {
		for _, line := range strings.Split(seg.Text, "\n") {
			if tag := lineLanguage(line); tag != language.Und {
				counts[tag]++
			}
		}
	}

	var top language.Tag = language.Und
	topCount := 0
	for tag, count := range counts {
		if count > topCount {
			top = tag
			topCount = count
		}
	}
	return top
}

func lineLanguage(line string) language.Tag {
	line = strings.TrimSpace(line)
	if line == "" {
		return language.Und
	}
	iso := whatlanggo.DetectLang(line).Iso6391()
	if iso == "" {
		return language.Und
	}
	return language.All.Make(iso)
}

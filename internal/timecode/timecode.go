package timecode

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// subtitle timestamp format
type Format string

const (
	FormatSRT Format = "srt" // HH:MM:SS,mmm
	FormatVTT Format = "vtt" // HH:MM:SS.mmm
)

// ErrParse is returned for timestamps that do not match the format.
// Callers parsing whole files should skip the offending block.
var ErrParse = errors.New("invalid timestamp")

var (
	fullTimestampRegex = regexp.MustCompile(
		`^(\d{1,2}):(\d{2}):(\d{2})[,.](\d{1,3})$`,
	)
	shortTimestampRegex = regexp.MustCompile(
		`^(\d{1,2}):(\d{2})(?:\.(\d{1,3}))?$`,
	)
)

// separator between seconds and milliseconds for a format
func millisSeparator(format Format) string {
	if format == FormatVTT {
		return "."
	}
	return ","
}

// Parse converts an SRT or VTT timestamp string to seconds. A lenient
// M:SS short form (used by minute-only VTT headers) is also accepted.
func Parse(s string, format Format) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrParse)
	}

	sep := millisSeparator(format)

	if matches := fullTimestampRegex.FindStringSubmatch(s); len(matches) == 5 {
		if !strings.Contains(s, sep) {
			return 0, fmt.Errorf("%w: wrong millisecond separator in %q", ErrParse, s)
		}
		h, _ := strconv.Atoi(matches[1])
		m, _ := strconv.Atoi(matches[2])
		sec, _ := strconv.Atoi(matches[3])
		ms, err := parseMillis(matches[4])
		if err != nil {
			return 0, err
		}
		if m > 59 || sec > 59 {
			return 0, fmt.Errorf("%w: field out of range in %q", ErrParse, s)
		}
		return float64(h*3600+m*60+sec) + float64(ms)/1000, nil
	}

	if matches := shortTimestampRegex.FindStringSubmatch(s); len(matches) == 4 {
		m, _ := strconv.Atoi(matches[1])
		sec, _ := strconv.Atoi(matches[2])
		if sec > 59 {
			return 0, fmt.Errorf("%w: seconds out of range in %q", ErrParse, s)
		}
		ms := 0
		if matches[3] != "" {
			var err error
			ms, err = parseMillis(matches[3])
			if err != nil {
				return 0, err
			}
		}
		return float64(m*60+sec) + float64(ms)/1000, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrParse, s)
}

func parseMillis(s string) (int, error) {
	// pad so ".5" means 500ms, not 5ms
	for len(s) < 3 {
		s += "0"
	}
	ms, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad milliseconds %q", ErrParse, s)
	}
	return ms, nil
}

// FormatTimestamp renders seconds as a zero-padded timestamp for the
// given format. Round-trips with Parse exactly to the millisecond.
func FormatTimestamp(seconds float64, format Format) string {
	if seconds < 0 {
		seconds = 0
	}

	totalMillis := int64(math.Round(seconds * 1000))
	h := totalMillis / 3600000
	m := (totalMillis / 60000) % 60
	s := (totalMillis / 1000) % 60
	ms := totalMillis % 1000

	return fmt.Sprintf("%02d:%02d:%02d%s%03d", h, m, s, millisSeparator(format), ms)
}

// FormatShort renders seconds as M:SS for display, flooring whole seconds.
func FormatShort(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

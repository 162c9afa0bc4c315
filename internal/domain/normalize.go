package domain

import (
	"strings"
	"time"
)

// DayLayout is the layout of a logical day (Activity.Date).
const DayLayout = "2006-01-02"

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ClampProgress limits a completion percentage to [0, 100].
func ClampProgress(p int) int {
	return min(max(p, 0), 100)
}

// ParseDay parses a YYYY-MM-DD logical day as midnight UTC.
func ParseDay(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDay returns the logical day t falls on in loc.
func FormatDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

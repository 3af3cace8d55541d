package order

import (
	"strings"
	"time"
)

// DisplayDateLayout renders dates as 14-Sep-2021.
const DisplayDateLayout = "02-Jan-2006"

var dateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses the ISO timestamps used by the order API, e.g.
// 2021-09-14T06:11:16Z. Empty or unparsable input reports false.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders s as DisplayDateLayout, or "" when it is not a date.
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return ""
	}
	return t.Format(DisplayDateLayout)
}

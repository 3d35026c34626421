package datetime

import (
	"regexp"
	"time"

	"github.com/pkg/errors"
)

// Layout is the canonical ISO-8601 UTC output layout.
const Layout = "2006-01-02T15:04:05.000Z"

// DateLayout is the date-only input/output layout.
const DateLayout = "2006-01-02"

var (
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(\.\d+)?([zZ]|[+-]\d{2}:?\d{2})?$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Layouts tried in order for full date-time strings. Go accepts fractional
// seconds in the input even when the layout omits them.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-0700",
}

// IsDateTime reports whether value matches the full date-time pattern.
func IsDateTime(value string) bool {
	return dateTimePattern.MatchString(value)
}

// IsDate reports whether value matches the date-only pattern.
func IsDate(value string) bool {
	return datePattern.MatchString(value)
}

// Parse converts a date-time or date-only string into a time. A date-only
// string yields midnight UTC on that date; a zoneless date-time is taken as
// UTC. Additional layouts, when supplied, are tried for strings matching
// neither pattern.
func Parse(value string, layouts ...string) (time.Time, error) {
	switch {
	case datePattern.MatchString(value):
		return time.ParseInLocation(DateLayout, value, time.UTC)
	case dateTimePattern.MatchString(value):
		for _, layout := range dateTimeLayouts {
			if ts, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
				return ts, nil
			}
		}
	}
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, errors.Errorf("unsupported date-time %q", value)
}

// Format renders ts as an ISO-8601 UTC timestamp with millisecond precision.
func Format(ts time.Time) string {
	return ts.UTC().Format(Layout)
}

// FormatDate renders the date-only portion of ts in UTC.
func FormatDate(ts time.Time) string {
	return ts.UTC().Format(DateLayout)
}

// FromUnixMilli converts epoch milliseconds into a UTC time, truncating any
// fractional millisecond toward zero.
func FromUnixMilli(millis float64) time.Time {
	return time.UnixMilli(int64(millis)).UTC()
}

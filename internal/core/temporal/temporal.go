package temporal

import (
	"fmt"
	"strings"
	"time"

	"github.com/aevon-lab/extremes/internal/core/extremes"
)

// DailyPeriod is the computation period of calendar-keyed series.
const DailyPeriod = "Daily"

// IsDaily reports whether a series with the given computation period is
// keyed by calendar date.
func IsDaily(computationPeriod string) bool {
	return strings.EqualFold(strings.TrimSpace(computationPeriod), DailyPeriod)
}

// Offset returns a fixed zone for a UTC offset expressed in minutes.
func Offset(minutes int) *time.Location {
	if minutes == 0 {
		return time.UTC
	}
	return time.FixedZone(offsetName(minutes), minutes*60)
}

func offsetName(minutes int) string {
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, minutes/60, minutes%60)
}

// Timezone returns the display name of a UTC offset. Whole-hour offsets use
// the IANA Etc zones, whose sign is inverted: UTC-5 is "Etc/GMT+5".
func Timezone(minutes int) string {
	switch {
	case minutes == 0:
		return "Etc/GMT"
	case minutes%60 != 0:
		return offsetName(minutes)
	case minutes < 0:
		return fmt.Sprintf("Etc/GMT+%d", -minutes/60)
	default:
		return fmt.Sprintf("Etc/GMT-%d", minutes/60)
	}
}

// PointMoment converts a stored point timestamp into an engine Moment.
// Daily timestamps mark the end of their period, so the value belongs to the
// calendar date one day earlier in loc.
func PointMoment(t time.Time, daily bool, loc *time.Location) extremes.Moment {
	local := t.In(loc)
	if daily {
		return extremes.DateOf(local.AddDate(0, 0, -1))
	}
	return extremes.Instant(local)
}

// QualifierMoment converts a qualifier bound. Daily series use the plain
// calendar date of t in loc.
func QualifierMoment(t time.Time, daily bool, loc *time.Location) extremes.Moment {
	if t.IsZero() {
		return extremes.Moment{}
	}
	local := t.In(loc)
	if daily {
		return extremes.DateOf(local)
	}
	return extremes.Instant(local)
}

// Window is a half-open retrieval range [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

// RequestWindow returns the range to read for the calendar days
// [startDate, endDate]. Daily series are read one day later so the
// end-of-period stamp of every requested day is included.
func RequestWindow(startDate, endDate time.Time, daily bool, loc *time.Location) Window {
	from := midnight(startDate, loc)
	to := midnight(endDate, loc).AddDate(0, 0, 1)
	if daily {
		from = from.AddDate(0, 0, 1)
		to = to.AddDate(0, 0, 1)
	}
	return Window{From: from, To: to}
}

func midnight(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

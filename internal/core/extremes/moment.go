package extremes

import (
	"fmt"
	"time"
)

// Kind distinguishes the two representations a series may be keyed by.
type Kind uint8

const (
	// KindDate is a calendar date with no time of day (daily series).
	KindDate Kind = iota + 1
	// KindInstant is a point in time carrying its own UTC offset.
	KindInstant
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindInstant:
		return "instant"
	default:
		return "unknown"
	}
}

// Moment is either a calendar date or a zoned instant.
// The zero Moment represents an absent bound.
type Moment struct {
	kind Kind
	t    time.Time
}

// Date returns the calendar-date Moment for y-m-d.
func Date(year int, month time.Month, day int) Moment {
	return Moment{kind: KindDate, t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date t falls on in its own location.
func DateOf(t time.Time) Moment {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Instant returns an instant Moment. The location of t is kept as its offset.
func Instant(t time.Time) Moment {
	return Moment{kind: KindInstant, t: t}
}

// Kind reports the representation of m.
func (m Moment) Kind() Kind { return m.kind }

// IsZero reports whether m is the absent Moment.
func (m Moment) IsZero() bool { return m.kind == 0 }

// Time returns the underlying time. Dates are midnight UTC.
func (m Moment) Time() time.Time { return m.t }

// Compare orders m against o and returns -1, 0 or +1.
//
// Dates compare by calendar day and instants by absolute time. A date D
// compared with an instant I is first projected to D@00:00 in I's offset,
// so 2018-01-02 equals 2018-01-02T00:00:00Z.
func (m Moment) Compare(o Moment) int {
	a, b := m.t, o.t
	switch {
	case m.kind == KindDate && o.kind == KindInstant:
		a = midnightIn(m.t, o.t)
	case m.kind == KindInstant && o.kind == KindDate:
		b = midnightIn(o.t, m.t)
	}
	return a.Compare(b)
}

// Equal reports whether m and o name the same moment under Compare.
func (m Moment) Equal(o Moment) bool {
	return m.Compare(o) == 0
}

// Before reports whether m sorts strictly before o.
func (m Moment) Before(o Moment) bool { return m.Compare(o) < 0 }

// After reports whether m sorts strictly after o.
func (m Moment) After(o Moment) bool { return m.Compare(o) > 0 }

// identical is stricter than Equal: same kind, same instant, same offset.
func (m Moment) identical(o Moment) bool {
	if m.kind != o.kind || !m.t.Equal(o.t) {
		return false
	}
	_, mo := m.t.Zone()
	_, oo := o.t.Zone()
	return mo == oo
}

// Within reports whether m lies in the closed interval [start, end].
// A zero bound leaves that side open.
func (m Moment) Within(start, end Moment) bool {
	if !start.IsZero() && m.Before(start) {
		return false
	}
	if !end.IsZero() && m.After(end) {
		return false
	}
	return true
}

func (m Moment) String() string {
	switch m.kind {
	case KindDate:
		return m.t.Format(time.DateOnly)
	case KindInstant:
		return m.t.Format(time.RFC3339Nano)
	default:
		return ""
	}
}

// MarshalText renders dates as YYYY-MM-DD, instants as RFC 3339 and the
// absent Moment as an empty string.
func (m Moment) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText accepts YYYY-MM-DD, an RFC 3339 timestamp or an empty string.
func (m *Moment) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*m = Moment{}
		return nil
	}
	parsed, err := ParseMoment(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMoment parses a calendar date (YYYY-MM-DD) or an RFC 3339 instant.
func ParseMoment(s string) (Moment, error) {
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return DateOf(d), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Moment{}, fmt.Errorf("invalid moment %q: want YYYY-MM-DD or RFC 3339", s)
	}
	return Instant(t), nil
}

// midnightIn places the calendar date of date at 00:00 in the fixed offset
// that instant carries.
func midnightIn(date, instant time.Time) time.Time {
	name, offset := instant.Zone()
	y, mo, d := date.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.FixedZone(name, offset))
}

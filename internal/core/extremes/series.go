package extremes

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Point is one timestamped observation. Value is an exact decimal; an invalid
// (null) value marks a point that never takes part in selection.
type Point struct {
	Time  Moment              `json:"time"`
	Value decimal.NullDecimal `json:"value"`
}

// NewPoint builds a point with a present value.
func NewPoint(t Moment, v decimal.Decimal) Point {
	return Point{Time: t, Value: decimal.NewNullDecimal(v)}
}

// HasValue reports whether the point carries a value.
func (p Point) HasValue() bool {
	return p.Value.Valid
}

// Equal compares time (same kind and instant) and value numerically.
func (p Point) Equal(o Point) bool {
	if !p.Time.identical(o.Time) || p.Value.Valid != o.Value.Valid {
		return false
	}
	return !p.Value.Valid || p.Value.Decimal.Equal(o.Value.Decimal)
}

// TieGroup is the set of points sharing one series' extreme value.
type TieGroup []Point

// Value returns the shared extreme value, or false for an empty group.
func (g TieGroup) Value() (decimal.Decimal, bool) {
	if len(g) == 0 {
		return decimal.Decimal{}, false
	}
	return g[0].Value.Decimal, true
}

// Qualifier is an annotation valid over the closed interval [StartTime, EndTime].
type Qualifier struct {
	Identifier string `json:"identifier"`
	StartTime  Moment `json:"startTime"`
	EndTime    Moment `json:"endTime"`
}

// Applies reports whether the qualifier's interval contains t, inclusive at
// both ends.
func (q Qualifier) Applies(t Moment) bool {
	return t.Within(q.StartTime, q.EndTime)
}

// Equal is whole-record equality.
func (q Qualifier) Equal(o Qualifier) bool {
	return q.Identifier == o.Identifier &&
		q.StartTime.identical(o.StartTime) &&
		q.EndTime.identical(o.EndTime)
}

// Series is a named sequence of points with its qualifiers. Points need not
// be sorted; the engine sorts a private copy.
type Series struct {
	Name       string
	Points     []Point
	Qualifiers []Qualifier
	StartTime  Moment
	EndTime    Moment
	Unit       string
	Type       string
}

// sortedPoints returns the valued points of s ordered by time. Points at the
// same time keep their input order.
func (s Series) sortedPoints() []Point {
	out := make([]Point, 0, len(s.Points))
	for _, p := range s.Points {
		if p.HasValue() && !p.Time.IsZero() {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b Point) int {
		return a.Time.Compare(b.Time)
	})
	return out
}

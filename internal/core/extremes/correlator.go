package extremes

import "slices"

// timeline is a series' valued points in chronological order, prepared once
// per Build and shared read-only between workers.
type timeline struct {
	points []Point
	// kind is the representation shared by every point, or 0 when the
	// series mixes dates and instants.
	kind Kind
}

func newTimeline(s Series) timeline {
	points := s.sortedPoints()
	tl := timeline{points: points}
	for i, p := range points {
		if i == 0 {
			tl.kind = p.Time.Kind()
			continue
		}
		if p.Time.Kind() != tl.kind {
			tl.kind = 0
			break
		}
	}
	return tl
}

// matching returns every point whose time equals at.
//
// When at has the same representation as the whole timeline the points are
// totally ordered by Compare and a binary search finds the first match.
// Otherwise the date side borrows a per-point offset, so the scan is linear.
func (tl timeline) matching(at Moment) []Point {
	var out []Point
	if tl.kind != 0 && tl.kind == at.Kind() {
		i, _ := slices.BinarySearchFunc(tl.points, at, func(p Point, t Moment) int {
			return p.Time.Compare(t)
		})
		for ; i < len(tl.points) && tl.points[i].Time.Equal(at); i++ {
			out = append(out, tl.points[i])
		}
		return out
	}
	for _, p := range tl.points {
		if p.Time.Equal(at) {
			out = append(out, p)
		}
	}
	return out
}

// Correlate finds, for every series in all other than from, the points whose
// time matches the time of a point in group.
//
// A series with no matching point has no key in the result. Several points
// of another series at one time are all returned.
func Correlate(group TieGroup, from string, all map[string]Series) map[string][]Point {
	timelines := make(map[string]timeline, len(all))
	for name, s := range all {
		if name != from {
			timelines[name] = newTimeline(s)
		}
	}
	return correlate(group, from, timelines)
}

func correlate(group TieGroup, from string, timelines map[string]timeline) map[string][]Point {
	related := make(map[string][]Point)
	for name, tl := range timelines {
		if name == from {
			continue
		}
		var matches []Point
		for i, p := range group {
			if i > 0 && group[i-1].Time.Equal(p.Time) {
				continue
			}
			matches = append(matches, tl.matching(p.Time)...)
		}
		if len(matches) > 0 {
			related[name] = matches
		}
	}
	return related
}

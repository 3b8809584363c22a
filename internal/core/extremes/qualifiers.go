package extremes

import "slices"

// ApplicableQualifiers returns the qualifiers whose closed interval contains
// the time of at least one point.
//
// Order is first-seen while walking points, then qualifiers; a qualifier
// selected for an earlier point is not repeated. Duplicates are detected by
// whole-record equality, so two records sharing an identifier but covering
// different intervals are both kept.
func ApplicableQualifiers(qualifiers []Qualifier, points []Point) []Qualifier {
	out := []Qualifier{}
	if len(qualifiers) == 0 {
		return out
	}
	for _, p := range points {
		for _, q := range qualifiers {
			if !q.Applies(p.Time) {
				continue
			}
			if slices.ContainsFunc(out, q.Equal) {
				continue
			}
			out = append(out, q)
		}
	}
	return out
}

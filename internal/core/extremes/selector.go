package extremes

// SelectExtreme returns every point of s that shares its single most extreme
// value under d, in chronological order.
//
// One pass: a strictly more extreme value resets the group, an exactly equal
// value joins it. Points without a value are skipped. An empty series yields
// an empty group.
func SelectExtreme(s Series, d Direction) TieGroup {
	return selectFrom(s.sortedPoints(), d)
}

func selectFrom(points []Point, d Direction) TieGroup {
	group := TieGroup{}
	for _, p := range points {
		if !p.HasValue() {
			continue
		}
		if len(group) == 0 {
			group = append(group, p)
			continue
		}
		switch c := d.Compare(p.Value.Decimal, group[0].Value.Decimal); {
		case c < 0:
			group = append(group[:0:0], p)
		case c == 0:
			group = append(group, p)
		}
	}
	return group
}

package extremes

import (
	"fmt"
	"runtime"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"
)

// SeriesSummary is the result for one series in one direction.
type SeriesSummary struct {
	Extreme    TieGroup
	Related    map[string][]Point
	Qualifiers []Qualifier
}

type seriesEntry struct {
	byDirection [len(Directions)]SeriesSummary
	startTime   Moment
	endTime     Moment
}

// MinMaxSummary holds the max and min summaries of every input series.
// It is read-only once Build returns; every query hands out copies.
type MinMaxSummary struct {
	entries map[string]*seriesEntry
	names   []string
}

type buildOptions struct {
	workers int
}

// Option configures Build.
type Option func(*buildOptions)

// WithWorkers bounds the number of series processed concurrently.
// Values below one fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *buildOptions) {
		o.workers = n
	}
}

// Build computes the max and min summaries of every series in series.
//
// Each series is handled independently: its tie groups are selected, the
// other series are searched for points at the tie-group times, and the
// series' own qualifiers are filtered to those applying at the tie group.
// Workers only read the input and write to their own slot.
func Build(series map[string]Series, opts ...Option) *MinMaxSummary {
	o := buildOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	timelines := make([]timeline, len(names))
	var prep errgroup.Group
	prep.SetLimit(o.workers)
	for i, name := range names {
		prep.Go(func() error {
			timelines[i] = newTimeline(series[name])
			return nil
		})
	}
	_ = prep.Wait()

	byName := make(map[string]timeline, len(names))
	for i, name := range names {
		byName[name] = timelines[i]
	}

	entries := make([]*seriesEntry, len(names))
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, name := range names {
		g.Go(func() error {
			s := series[name]
			e := &seriesEntry{startTime: s.StartTime, endTime: s.EndTime}
			for _, d := range Directions {
				group := selectFrom(timelines[i].points, d)
				e.byDirection[d.index()] = SeriesSummary{
					Extreme:    group,
					Related:    correlate(group, name, byName),
					Qualifiers: ApplicableQualifiers(s.Qualifiers, group),
				}
			}
			entries[i] = e
			return nil
		})
	}
	_ = g.Wait()

	m := &MinMaxSummary{entries: make(map[string]*seriesEntry, len(names)), names: names}
	for i, name := range names {
		m.entries[name] = entries[i]
	}
	return m
}

func (m *MinMaxSummary) entry(name string) (*seriesEntry, error) {
	e, ok := m.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}
	return e, nil
}

func (m *MinMaxSummary) summary(d Direction, name string) (SeriesSummary, error) {
	if !d.Valid() {
		return SeriesSummary{}, fmt.Errorf("invalid direction %s", d)
	}
	e, err := m.entry(name)
	if err != nil {
		return SeriesSummary{}, err
	}
	return e.byDirection[d.index()], nil
}

// Series returns the names of every summarised series in sorted order.
func (m *MinMaxSummary) Series() []string {
	return slices.Clone(m.names)
}

// Has reports whether name was part of the Build input.
func (m *MinMaxSummary) Has(name string) bool {
	_, ok := m.entries[name]
	return ok
}

// Get returns the tie group of name under d.
func (m *MinMaxSummary) Get(d Direction, name string) (TieGroup, error) {
	s, err := m.summary(d, name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.Extreme), nil
}

// GetAt returns the points of related that coincide with the extreme of at
// under d. Asking for at's own points returns its tie group.
func (m *MinMaxSummary) GetAt(d Direction, at, related string) ([]Point, error) {
	s, err := m.summary(d, at)
	if err != nil {
		return nil, err
	}
	if at == related {
		return slices.Clone(s.Extreme), nil
	}
	if _, err := m.entry(related); err != nil {
		return nil, err
	}
	out := slices.Clone(s.Related[related])
	if out == nil {
		out = []Point{}
	}
	return out, nil
}

// GetApplicableQualifiers returns the qualifiers of name that apply at its
// extreme under d.
func (m *MinMaxSummary) GetApplicableQualifiers(d Direction, name string) ([]Qualifier, error) {
	s, err := m.summary(d, name)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.Qualifiers), nil
}

// GetQualifiers returns the qualifiers of name applying at either its max or
// its min, max first, without duplicates.
func (m *MinMaxSummary) GetQualifiers(name string) ([]Qualifier, error) {
	e, err := m.entry(name)
	if err != nil {
		return nil, err
	}
	out := []Qualifier{}
	for _, d := range Directions {
		for _, q := range e.byDirection[d.index()].Qualifiers {
			if !slices.ContainsFunc(out, q.Equal) {
				out = append(out, q)
			}
		}
	}
	return out, nil
}

// UniqueExtreme returns the single point holding the extreme of name under d.
// It fails with ErrNonUniqueExtreme when several points share the extreme and
// with ErrNoExtreme when the series has no valued points.
func (m *MinMaxSummary) UniqueExtreme(d Direction, name string) (Point, error) {
	s, err := m.summary(d, name)
	if err != nil {
		return Point{}, err
	}
	switch len(s.Extreme) {
	case 0:
		return Point{}, fmt.Errorf("%w: %s of %q", ErrNoExtreme, d, name)
	case 1:
		return s.Extreme[0], nil
	default:
		return Point{}, fmt.Errorf("%w: %s of %q occurs %d times", ErrNonUniqueExtreme, d, name, len(s.Extreme))
	}
}

// MultipleExtremes reports whether the extreme of name under d occurs more
// than once.
func (m *MinMaxSummary) MultipleExtremes(d Direction, name string) (bool, error) {
	s, err := m.summary(d, name)
	if err != nil {
		return false, err
	}
	return len(s.Extreme) > 1, nil
}

// StartTime returns the requested start bound recorded for name.
func (m *MinMaxSummary) StartTime(name string) (Moment, error) {
	e, err := m.entry(name)
	if err != nil {
		return Moment{}, err
	}
	return e.startTime, nil
}

// EndTime returns the requested end bound recorded for name.
func (m *MinMaxSummary) EndTime(name string) (Moment, error) {
	e, err := m.entry(name)
	if err != nil {
		return Moment{}, err
	}
	return e.endTime, nil
}

package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	v1 "github.com/aevon-lab/extremes/internal/api/v1"
	"github.com/aevon-lab/extremes/internal/catalog"
	"github.com/aevon-lab/extremes/internal/core/extremes"
	"github.com/aevon-lab/extremes/internal/core/precision"
	"github.com/aevon-lab/extremes/internal/core/storage"
	"github.com/aevon-lab/extremes/internal/core/temporal"
	"github.com/aevon-lab/extremes/internal/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidRequest marks request validation errors that should return HTTP 400.
var ErrInvalidRequest = errors.New("invalid report request")

// Option configures a Service.
type Option func(*Service)

// WithMetrics records report and engine metrics on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) { s.metrics = m }
}

// WithWorkers bounds engine parallelism. Zero uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Service) { s.workers = n }
}

// WithTimeout bounds every HTTP report request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// Service builds extremes reports from stored series.
type Service struct {
	store   storage.SeriesStore
	catalog *catalog.Registry
	metrics *metrics.Manager
	workers int
	timeout time.Duration
	newID   func() string
}

// NewService creates a report service.
func NewService(store storage.SeriesStore, registry *catalog.Registry, opts ...Option) *Service {
	if store == nil {
		panic("report: series store must not be nil")
	}
	if registry == nil {
		panic("report: catalog must not be nil")
	}
	s := &Service{
		store:   store,
		catalog: registry,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// role is one requested series resolved against the catalog.
type role struct {
	name  string
	id    string
	desc  storage.SeriesDescription
	daily bool
	found bool
}

// Build produces the extremes report for req.
func (s *Service) Build(ctx context.Context, req v1.ReportRequest) (_ *Report, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveReport(outcome(err), time.Since(started))
	}()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error())
	}

	descs, err := s.catalog.Describe(ctx, req.SeriesIDs())
	if err != nil {
		return nil, err
	}

	roles := resolveRoles(req, descs)
	if !roles[0].found {
		return nil, fmt.Errorf("%w: primary %q", storage.ErrNotFound, req.Primary)
	}
	for _, r := range roles[1:] {
		if !r.found {
			slog.Warn("[Report] Companion series not found, section left empty",
				"role", r.name,
				"unique_id", r.id)
		}
	}

	series, err := s.loadSeries(ctx, roles, req.Start(), req.End())
	if err != nil {
		return nil, err
	}

	buildStarted := time.Now()
	summary := extremes.Build(series, extremes.WithWorkers(s.workers))
	s.metrics.ObserveEngineBuild(time.Since(buildStarted))

	rep := &Report{}
	for _, r := range roles {
		section, err := assembleSection(summary, r.name)
		if err != nil {
			return nil, fmt.Errorf("assemble %s section: %w", r.name, err)
		}
		switch r.name {
		case RolePrimary:
			rep.Primary = section
		case RoleUpchain:
			rep.Upchain = section
		case RoleDerived:
			rep.Derived = section
		}
	}

	meta, err := s.buildMetadata(ctx, req, roles, rep)
	if err != nil {
		return nil, err
	}
	rep.Metadata = meta

	slog.Info("[Report] Built extremes report",
		"request_id", meta.RequestID,
		"primary", req.Primary,
		"series", len(series),
		"elapsed", time.Since(started))
	return rep, nil
}

// resolveRoles lists the requested roles in report order, primary first.
// The derived series is always treated as daily.
func resolveRoles(req v1.ReportRequest, descs map[string]storage.SeriesDescription) []role {
	roles := []role{{name: RolePrimary, id: req.Primary}}
	if req.Upchain != "" {
		roles = append(roles, role{name: RoleUpchain, id: req.Upchain})
	}
	if req.Derived != "" {
		roles = append(roles, role{name: RoleDerived, id: req.Derived})
	}
	for i := range roles {
		r := &roles[i]
		r.desc, r.found = descs[r.id]
		r.daily = r.name == RoleDerived || temporal.IsDaily(r.desc.ComputationPeriod)
	}
	return roles
}

// loadSeries retrieves every found role in parallel and converts it to an
// engine series keyed by role name.
func (s *Service) loadSeries(ctx context.Context, roles []role, start, end time.Time) (map[string]extremes.Series, error) {
	loaded := make([]*extremes.Series, len(roles))
	g, gctx := errgroup.WithContext(ctx)
	for i, r := range roles {
		if !r.found {
			continue
		}
		g.Go(func() error {
			series, err := s.loadOne(gctx, r, start, end)
			if err != nil {
				return fmt.Errorf("load %s series %q: %w", r.name, r.id, err)
			}
			loaded[i] = series
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]extremes.Series, len(roles))
	for _, series := range loaded {
		if series != nil {
			out[series.Name] = *series
		}
	}
	return out, nil
}

func (s *Service) loadOne(ctx context.Context, r role, start, end time.Time) (*extremes.Series, error) {
	loc := temporal.Offset(r.desc.UTCOffsetMinutes)
	window := temporal.RequestWindow(start, end, r.daily, loc)

	raw, err := s.store.RetrievePoints(ctx, r.id, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("retrieve points: %w", err)
	}
	quals, err := s.store.RetrieveQualifiers(ctx, r.id, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("retrieve qualifiers: %w", err)
	}
	s.metrics.AddPointsRetrieved(len(raw))

	series := &extremes.Series{
		Name:       r.name,
		Points:     make([]extremes.Point, 0, len(raw)),
		Qualifiers: make([]extremes.Qualifier, 0, len(quals)),
		Unit:       r.desc.Unit,
		Type:       r.desc.Parameter,
	}
	if r.daily {
		series.StartTime = extremes.DateOf(start)
		series.EndTime = extremes.DateOf(end)
	} else {
		series.StartTime = extremes.Instant(window.From)
		series.EndTime = extremes.Instant(window.To)
	}

	for _, p := range raw {
		if p.Timestamp.Before(window.From) || !p.Timestamp.Before(window.To) {
			continue
		}
		v, ok := precision.RoundedValue(p.Display, p.Value)
		series.Points = append(series.Points, extremes.Point{
			Time:  temporal.PointMoment(p.Timestamp, r.daily, loc),
			Value: nullDecimal(v, ok),
		})
	}
	for _, q := range quals {
		series.Qualifiers = append(series.Qualifiers, extremes.Qualifier{
			Identifier: q.Identifier,
			StartTime:  temporal.QualifierMoment(q.StartTime, r.daily, loc),
			EndTime:    temporal.QualifierMoment(q.EndTime, r.daily, loc),
		})
	}

	slog.Debug("[Report] Loaded series",
		"role", r.name,
		"unique_id", r.id,
		"points", len(series.Points),
		"qualifiers", len(series.Qualifiers))
	return series, nil
}

// assembleSection renders one role. A role absent from the summary renders
// as an empty section.
func assembleSection(summary *extremes.MinMaxSummary, name string) (*Section, error) {
	section := &Section{
		Max:        Extreme{Points: []extremes.Point{}},
		Min:        Extreme{Points: []extremes.Point{}},
		Qualifiers: []extremes.Qualifier{},
	}
	if !summary.Has(name) {
		return section, nil
	}

	for _, d := range extremes.Directions {
		group, err := summary.Get(d, name)
		if err != nil {
			return nil, err
		}
		ext := Extreme{Points: group}

		// Primary and upchain are reported against each other; the derived
		// series stands alone.
		switch name {
		case RolePrimary:
			if summary.Has(RoleUpchain) {
				if ext.RelatedUpchain, err = summary.GetAt(d, name, RoleUpchain); err != nil {
					return nil, err
				}
			}
		case RoleUpchain:
			if summary.Has(RolePrimary) {
				if ext.RelatedPrimary, err = summary.GetAt(d, name, RolePrimary); err != nil {
					return nil, err
				}
			}
		}

		if d == extremes.Max {
			section.Max = ext
			section.MultipleMaxFlag = len(group) > 1
		} else {
			section.Min = ext
			section.MultipleMinFlag = len(group) > 1
		}
	}

	qualifiers, err := summary.GetQualifiers(name)
	if err != nil {
		return nil, err
	}
	section.Qualifiers = qualifiers
	return section, nil
}

func (s *Service) buildMetadata(ctx context.Context, req v1.ReportRequest, roles []role, rep *Report) (Metadata, error) {
	primary := roles[0].desc
	meta := Metadata{
		Title:            reportTitle,
		ReportType:       reportType,
		RequestID:        s.newID(),
		RequestingUser:   req.RequestingUser,
		StartDate:        req.Start().Format(time.DateOnly),
		EndDate:          req.End().Format(time.DateOnly),
		Timezone:         temporal.Timezone(primary.UTCOffsetMinutes),
		StationID:        primary.LocationIdentifier,
		StationName:      primary.LocationName,
		PrimaryLabel:     primary.Identifier,
		PrimaryParameter: primary.Parameter,
		PrimaryUnit:      primary.Unit,
	}
	for _, r := range roles[1:] {
		if !r.found {
			continue
		}
		switch r.name {
		case RoleUpchain:
			meta.UpchainLabel = r.desc.Identifier
			meta.UpchainParameter = r.desc.Parameter
			meta.UpchainUnit = r.desc.Unit
		case RoleDerived:
			meta.DvLabel = r.desc.Identifier
			meta.DvParameter = r.desc.Parameter
			meta.DvUnit = r.desc.Unit
			meta.DvComputation = r.desc.ComputationIdentifier
		}
	}

	meta.QualifierMetadata = map[string]storage.QualifierMetadata{}
	identifiers := reportedQualifiers(rep)
	if len(identifiers) == 0 {
		return meta, nil
	}
	found, err := s.store.LookupQualifierMetadata(ctx, identifiers)
	if err != nil {
		return Metadata{}, fmt.Errorf("lookup qualifier metadata: %w", err)
	}
	for _, m := range found {
		meta.QualifierMetadata[m.Identifier] = m
	}
	return meta, nil
}

// reportedQualifiers returns the sorted identifiers of every qualifier in rep.
func reportedQualifiers(rep *Report) []string {
	var ids []string
	for _, section := range []*Section{rep.Primary, rep.Upchain, rep.Derived} {
		if section == nil {
			continue
		}
		for _, q := range section.Qualifiers {
			ids = append(ids, q.Identifier)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrInvalidRequest):
		return metrics.OutcomeInvalid
	case errors.Is(err, storage.ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

func nullDecimal(v decimal.Decimal, ok bool) decimal.NullDecimal {
	if !ok {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(v)
}

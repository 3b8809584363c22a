package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	v1 "github.com/aevon-lab/extremes/internal/api/v1"
	"github.com/aevon-lab/extremes/internal/catalog"
	"github.com/aevon-lab/extremes/internal/core/storage"
	storagemocks "github.com/aevon-lab/extremes/internal/mocks/storage"
	"github.com/aevon-lab/extremes/internal/metrics"
)

const offsetMinutes = -300

var (
	est = time.FixedZone("EST", offsetMinutes*60)

	descPrimary = storage.SeriesDescription{
		UniqueID:           "ts-q",
		Identifier:         "Discharge.Working@01646500",
		Parameter:          "Discharge",
		Unit:               "ft^3/s",
		LocationIdentifier: "01646500",
		LocationName:       "Potomac River near Wash, DC",
		UTCOffsetMinutes:   offsetMinutes,
	}
	descUpchain = storage.SeriesDescription{
		UniqueID:         "ts-s",
		Identifier:       "Gage height.Working@01646500",
		Parameter:        "Gage height",
		Unit:             "ft",
		UTCOffsetMinutes: offsetMinutes,
	}
	descDerived = storage.SeriesDescription{
		UniqueID:              "ts-dv",
		Identifier:            "Discharge.ft^3/s.Mean@01646500",
		Parameter:             "Discharge",
		Unit:                  "ft^3/s",
		ComputationIdentifier: "Mean",
		ComputationPeriod:     "Daily",
		UTCOffsetMinutes:      offsetMinutes,
	}
)

func utc(day, hour int) time.Time {
	return time.Date(2018, 1, day, hour, 0, 0, 0, time.UTC)
}

func local(day int) time.Time {
	return time.Date(2018, 1, day, 0, 0, 0, 0, est)
}

func raw(ts time.Time, value, display string) storage.RawPoint {
	p := storage.RawPoint{Timestamp: ts, Display: display}
	if value != "" {
		p.Value = decimal.NewNullDecimal(decimal.RequireFromString(value))
	}
	return p
}

// sameTime matches a time.Time argument by instant, ignoring location identity.
func sameTime(want time.Time) interface{} {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func fullRequest() v1.ReportRequest {
	return v1.ReportRequest{
		Primary:        "ts-q",
		Upchain:        "ts-s",
		Derived:        "ts-dv",
		StartDate:      "2018-01-01",
		EndDate:        "2018-01-03",
		RequestingUser: "hydro",
	}
}

// expectFullReport stores three series over 2018-01-01..03 in UTC-5:
//   - primary: max 9.0 (by display) at Jan 2 and Jan 3 10:00Z, min 5 at Jan 1
//   - upchain: max 3.3 at Jan 3 11:00Z, min 1.2 at Jan 1 10:00Z
//   - derived daily: max 7 on Jan 1 and Jan 2, min 6 on Jan 3
func expectFullReport(store *storagemocks.SeriesStore) {
	store.EXPECT().
		DescribeSeries(mock.Anything, []string{"ts-q", "ts-s", "ts-dv"}).
		Return([]storage.SeriesDescription{descPrimary, descUpchain, descDerived}, nil).
		Once()

	store.EXPECT().
		RetrievePoints(mock.Anything, "ts-q", sameTime(local(1)), sameTime(local(4))).
		Return([]storage.RawPoint{
			raw(utc(1, 10), "5", "5.0"),
			raw(utc(2, 10), "9.04", "9.0"),
			raw(utc(3, 10), "8.96", "9.0"),
			raw(utc(3, 12), "", ""),
		}, nil).
		Once()
	store.EXPECT().
		RetrieveQualifiers(mock.Anything, "ts-q", sameTime(local(1)), sameTime(local(4))).
		Return([]storage.RawQualifier{
			{Identifier: "EST", StartTime: utc(2, 0), EndTime: utc(2, 23)},
			{Identifier: "ICE", StartTime: utc(3, 11), EndTime: utc(3, 23)},
		}, nil).
		Once()

	store.EXPECT().
		RetrievePoints(mock.Anything, "ts-s", sameTime(local(1)), sameTime(local(4))).
		Return([]storage.RawPoint{
			raw(utc(1, 10), "1.2", ""),
			raw(utc(2, 10), "2.1", ""),
			raw(utc(3, 11), "3.3", ""),
		}, nil).
		Once()
	store.EXPECT().
		RetrieveQualifiers(mock.Anything, "ts-s", sameTime(local(1)), sameTime(local(4))).
		Return(nil, nil).
		Once()

	store.EXPECT().
		RetrievePoints(mock.Anything, "ts-dv", sameTime(local(2)), sameTime(local(5))).
		Return([]storage.RawPoint{
			raw(local(2), "7", ""),
			raw(local(3), "7", ""),
			raw(local(4), "6", ""),
		}, nil).
		Once()
	store.EXPECT().
		RetrieveQualifiers(mock.Anything, "ts-dv", sameTime(local(2)), sameTime(local(5))).
		Return([]storage.RawQualifier{
			{Identifier: "ICE", StartTime: local(3), EndTime: local(3)},
		}, nil).
		Once()

	store.EXPECT().
		LookupQualifierMetadata(mock.Anything, []string{"EST", "ICE"}).
		Return([]storage.QualifierMetadata{
			{Identifier: "EST", Code: "E", DisplayName: "Estimated"},
		}, nil).
		Once()
}

func newTestService(t *testing.T, m *metrics.Manager) (*Service, *storagemocks.SeriesStore) {
	t.Helper()
	store := storagemocks.NewSeriesStore(t)
	svc := NewService(store, catalog.NewRegistry(store, 16, m), WithMetrics(m), WithWorkers(2))
	svc.newID = func() string { return "req-1" }
	return svc, store
}

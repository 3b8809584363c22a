package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aevon-lab/extremes/internal/core/storage"
)

func TestAdapter_DescribeSeries(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	ids := []string{"gage-height", "discharge"}
	mock.ExpectQuery(regexp.QuoteMeta(queryDescribeSeries)).
		WithArgs(pq.Array(ids)).
		WillReturnRows(sqlmock.NewRows(descriptionColumns()).
			AddRow("discharge", "Discharge.ft^3/s@01014000", "Discharge", "ft^3/s", "01014000", "St. John River", "Instantaneous", "Points", -300),
		).RowsWillBeClosed()

	got, err := adapter.DescribeSeries(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "discharge", got[0].UniqueID)
	require.Equal(t, "St. John River", got[0].LocationName)
	require.Equal(t, "Points", got[0].ComputationPeriod)
	require.Equal(t, -300, got[0].UTCOffsetMinutes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_DescribeSeriesEmptyInput(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	got, err := adapter.DescribeSeries(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_RetrievePoints(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	from := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	mock.ExpectQuery(regexp.QuoteMeta(queryRetrievePoints)).
		WithArgs("discharge", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"ts", "value", "display"}).
			AddRow(from.Add(15*time.Minute), "12.345", "12.3").
			AddRow(from.Add(30*time.Minute), nil, nil),
		).RowsWillBeClosed()

	got, err := adapter.RetrievePoints(context.Background(), "discharge", from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.True(t, got[0].Value.Valid)
	require.True(t, got[0].Value.Decimal.Equal(decimal.RequireFromString("12.345")))
	require.Equal(t, "12.3", got[0].Display)
	require.False(t, got[1].Value.Valid)
	require.Empty(t, got[1].Display)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_RetrievePointsQueryError(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	from := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	queryErr := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta(queryRetrievePoints)).
		WithArgs("discharge", from, from).
		WillReturnError(queryErr)

	_, err := adapter.RetrievePoints(context.Background(), "discharge", from, from)
	require.ErrorIs(t, err, queryErr)
	require.ErrorContains(t, err, "failed to query points of discharge")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_RetrieveQualifiers(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	from := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery(regexp.QuoteMeta(queryRetrieveQualifiers)).
		WithArgs("discharge", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"identifier", "start_time", "end_time", "applied_by"}).
			AddRow("ICE", from.Add(-time.Hour), from.Add(48*time.Hour), "hydrographer"),
		).RowsWillBeClosed()

	got, err := adapter.RetrieveQualifiers(context.Background(), "discharge", from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "ICE", got[0].Identifier)
	require.Equal(t, "hydrographer", got[0].AppliedBy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_LookupQualifierMetadata(t *testing.T) {
	adapter, mock, db := newMockAdapter(t)
	defer db.Close()

	ids := []string{"EST", "ICE"}
	mock.ExpectQuery(regexp.QuoteMeta(queryLookupQualifierMetadata)).
		WithArgs(pq.Array(ids)).
		WillReturnRows(sqlmock.NewRows([]string{"identifier", "code", "display_name"}).
			AddRow("EST", "E", "Estimated").
			AddRow("ICE", "I", "Ice affected"),
		).RowsWillBeClosed()

	got, err := adapter.LookupQualifierMetadata(context.Background(), ids)
	require.NoError(t, err)
	require.Equal(t, []storage.QualifierMetadata{
		{Identifier: "EST", Code: "E", DisplayName: "Estimated"},
		{Identifier: "ICE", Code: "I", DisplayName: "Ice affected"},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_SaveSeries(t *testing.T) {
	ts := time.Date(2018, 1, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)

	data := &storage.SeriesData{
		Description: storage.SeriesDescription{
			UniqueID:          "discharge",
			Identifier:        "Discharge.ft^3/s@01014000",
			Parameter:         "Discharge",
			Unit:              "ft^3/s",
			ComputationPeriod: "Points",
			UTCOffsetMinutes:  -300,
		},
		Points: []storage.RawPoint{
			{Timestamp: ts, Value: decimal.NewNullDecimal(decimal.RequireFromString("1.5")), Display: "1.5"},
			{Timestamp: ts.Add(time.Hour)},
		},
		Qualifiers: []storage.RawQualifier{
			{Identifier: "EST", StartTime: ts, EndTime: ts.Add(time.Hour), AppliedBy: "admin"},
		},
		QualifierMetadata: []storage.QualifierMetadata{
			{Identifier: "EST", Code: "E", DisplayName: "Estimated"},
		},
	}

	tests := []struct {
		name   string
		expect func(mock sqlmock.Sqlmock)
		check  func(t *testing.T, err error)
	}{
		{
			name: "commits all writes",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(queryUpsertDescription)).
					WithArgs("discharge", "Discharge.ft^3/s@01014000", "Discharge", "ft^3/s", "", "", "", "Points", -300, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectPrepare(regexp.QuoteMeta(queryUpsertPoint))
				mock.ExpectExec(regexp.QuoteMeta(queryUpsertPoint)).
					WithArgs("discharge", ts, sqlmock.AnyArg(), "1.5").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(queryUpsertPoint)).
					WithArgs("discharge", ts.Add(time.Hour), nil, nil).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(queryDeleteQualifiers)).
					WithArgs("discharge").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec(regexp.QuoteMeta(queryInsertQualifier)).
					WithArgs("discharge", "EST", ts, ts.Add(time.Hour), "admin").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta(queryUpsertQualifierMetadata)).
					WithArgs("EST", "E", "Estimated").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			check: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "point failure rolls back",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(queryUpsertDescription)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectPrepare(regexp.QuoteMeta(queryUpsertPoint))
				mock.ExpectExec(regexp.QuoteMeta(queryUpsertPoint)).
					WillReturnError(errors.New("numeric field overflow"))
				mock.ExpectRollback()
			},
			check: func(t *testing.T, err error) {
				require.ErrorContains(t, err, "save series discharge: upsert point")
				require.ErrorContains(t, err, "numeric field overflow")
			},
		},
		{
			name: "begin failure",
			expect: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(sql.ErrConnDone)
			},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, sql.ErrConnDone)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock, db := newMockAdapter(t)
			defer db.Close()
			adapter.now = func() time.Time { return now }

			tc.expect(mock)
			tc.check(t, adapter.SaveSeries(context.Background(), data))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdapter_CloseReturnsDBCloseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dbCloseErr := errors.New("db close failed")

	adapter := &Adapter{
		db:                     db,
		stmtDescribeSeries:     mustPrepareStmt(t, db, mock, queryDescribeSeries),
		stmtRetrievePoints:     mustPrepareStmt(t, db, mock, queryRetrievePoints),
		stmtRetrieveQualifiers: mustPrepareStmt(t, db, mock, queryRetrieveQualifiers),
	}
	mock.ExpectClose().WillReturnError(dbCloseErr)

	err = adapter.Close()
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to close database")
	require.ErrorIs(t, err, dbCloseErr)
}

func TestNewAdapterFromDB_PrepareFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectPrepare(regexp.QuoteMeta(queryDescribeSeries)).
		WillReturnError(errors.New(`relation "series_descriptions" does not exist`))
	mock.ExpectClose()

	_, err = NewAdapterFromDB(db)
	require.ErrorContains(t, err, "did you run migrations?")
	require.NoError(t, mock.ExpectationsWereMet())
}

func newMockAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	adapter := &Adapter{
		db:                     db,
		stmtDescribeSeries:     mustPrepareStmt(t, db, mock, queryDescribeSeries),
		stmtRetrievePoints:     mustPrepareStmt(t, db, mock, queryRetrievePoints),
		stmtRetrieveQualifiers: mustPrepareStmt(t, db, mock, queryRetrieveQualifiers),
		stmtLookupMetadata:     mustPrepareStmt(t, db, mock, queryLookupQualifierMetadata),
		now:                    time.Now,
	}

	return adapter, mock, db
}

func mustPrepareStmt(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock, query string) *sql.Stmt {
	t.Helper()

	mock.ExpectPrepare(regexp.QuoteMeta(query))
	stmt, err := db.Prepare(query)
	require.NoError(t, err)

	return stmt
}

func descriptionColumns() []string {
	return []string{
		"unique_id",
		"identifier",
		"parameter",
		"unit",
		"location_identifier",
		"location_name",
		"computation_identifier",
		"computation_period",
		"utc_offset_minutes",
	}
}

func TestAdapter_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	adapter := &Adapter{db: db}

	mock.ExpectPing()
	require.NoError(t, adapter.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	require.Error(t, adapter.Ping(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

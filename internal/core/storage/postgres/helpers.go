package postgres

import (
	"fmt"

	"github.com/aevon-lab/extremes/internal/core/storage"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanDescriptionRow is compatible with both sql.Row and sql.Rows.
func scanDescriptionRow(row scanner) (storage.SeriesDescription, error) {
	var d storage.SeriesDescription
	err := row.Scan(
		&d.UniqueID,
		&d.Identifier,
		&d.Parameter,
		&d.Unit,
		&d.LocationIdentifier,
		&d.LocationName,
		&d.ComputationIdentifier,
		&d.ComputationPeriod,
		&d.UTCOffsetMinutes,
	)
	if err != nil {
		return storage.SeriesDescription{}, fmt.Errorf("failed to scan series description row: %w", err)
	}
	return d, nil
}

// scanPointRow reads NUMERIC NULL into an invalid NullDecimal and a NULL
// display into "".
func scanPointRow(row scanner) (storage.RawPoint, error) {
	var p storage.RawPoint
	var display *string
	if err := row.Scan(&p.Timestamp, &p.Value, &display); err != nil {
		return storage.RawPoint{}, fmt.Errorf("failed to scan point row: %w", err)
	}
	if display != nil {
		p.Display = *display
	}
	return p, nil
}

func scanQualifierRow(row scanner) (storage.RawQualifier, error) {
	var q storage.RawQualifier
	if err := row.Scan(&q.Identifier, &q.StartTime, &q.EndTime, &q.AppliedBy); err != nil {
		return storage.RawQualifier{}, fmt.Errorf("failed to scan qualifier row: %w", err)
	}
	return q, nil
}

// nullableDisplay stores an empty display as SQL NULL.
func nullableDisplay(display string) interface{} {
	if display == "" {
		return nil
	}
	return display
}

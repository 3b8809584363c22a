package storage

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested series does not exist.
var ErrNotFound = errors.New("series not found")

// ErrReadOnly is returned by stores that cannot accept writes.
var ErrReadOnly = errors.New("series store is read-only")

// SeriesDescription is the catalog entry of one stored series.
type SeriesDescription struct {
	UniqueID              string `json:"unique_id" yaml:"unique_id"`
	Identifier            string `json:"identifier" yaml:"identifier"`
	Parameter             string `json:"parameter" yaml:"parameter"`
	Unit                  string `json:"unit" yaml:"unit"`
	LocationIdentifier    string `json:"location_identifier" yaml:"location_identifier"`
	LocationName          string `json:"location_name" yaml:"location_name"`
	ComputationIdentifier string `json:"computation_identifier" yaml:"computation_identifier"`
	ComputationPeriod     string `json:"computation_period" yaml:"computation_period"`
	UTCOffsetMinutes      int    `json:"utc_offset_minutes" yaml:"utc_offset_minutes"`
}

// RawPoint is a stored observation. Display holds the value rounded to the
// series' reporting precision; an invalid Value with an empty Display is a gap.
type RawPoint struct {
	Timestamp time.Time
	Value     decimal.NullDecimal
	Display   string
}

// RawQualifier is a stored annotation over [StartTime, EndTime].
type RawQualifier struct {
	Identifier string
	StartTime  time.Time
	EndTime    time.Time
	AppliedBy  string
}

// QualifierMetadata is the human-readable description of a qualifier identifier.
type QualifierMetadata struct {
	Identifier  string `json:"identifier"`
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
}

// SeriesData is one series as written by ingestion. Points replace stored
// points with the same timestamp; Qualifiers replace the stored set.
type SeriesData struct {
	Description       SeriesDescription
	Points            []RawPoint
	Qualifiers        []RawQualifier
	QualifierMetadata []QualifierMetadata
}

// SeriesStore retrieves (and optionally stores) time series.
type SeriesStore interface {
	// DescribeSeries returns the descriptions of the given unique IDs.
	// Unknown IDs are omitted from the result.
	DescribeSeries(ctx context.Context, uniqueIDs []string) ([]SeriesDescription, error)

	// RetrievePoints returns the points in [from, to) ordered by timestamp.
	RetrievePoints(ctx context.Context, uniqueID string, from, to time.Time) ([]RawPoint, error)

	// RetrieveQualifiers returns the qualifiers overlapping [from, to).
	RetrieveQualifiers(ctx context.Context, uniqueID string, from, to time.Time) ([]RawQualifier, error)

	// LookupQualifierMetadata returns metadata for the known identifiers.
	LookupQualifierMetadata(ctx context.Context, identifiers []string) ([]QualifierMetadata, error)

	// SaveSeries writes a series atomically. Read-only stores return ErrReadOnly.
	SaveSeries(ctx context.Context, data *SeriesData) error
}

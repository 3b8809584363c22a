package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// maxOffsetMinutes bounds a series UTC offset to the range real zones use.
const maxOffsetMinutes = 14 * 60

// SeriesPayload is the body of a series ingest request. The unique ID comes
// from the URL.
type SeriesPayload struct {
	Identifier            string `json:"identifier"`
	Parameter             string `json:"parameter"`
	Unit                  string `json:"unit"`
	LocationIdentifier    string `json:"location_identifier"`
	LocationName          string `json:"location_name"`
	ComputationIdentifier string `json:"computation_identifier"`

	// ComputationPeriod "Daily" marks a calendar-keyed series whose point
	// timestamps close each day.
	ComputationPeriod string `json:"computation_period"`
	UTCOffsetMinutes  int    `json:"utc_offset_minutes"`

	Points            []PointPayload             `json:"points"`
	Qualifiers        []QualifierPayload         `json:"qualifiers"`
	QualifierMetadata []QualifierMetadataPayload `json:"qualifier_metadata,omitempty"`
}

// PointPayload is one observation. A null value is a gap.
type PointPayload struct {
	Time  time.Time           `json:"time"`
	Value decimal.NullDecimal `json:"value"`

	// Display is the value as shown at the series' reporting precision.
	Display string `json:"display,omitempty"`
}

// QualifierPayload annotates [StartTime, EndTime].
type QualifierPayload struct {
	Identifier string    `json:"identifier"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	AppliedBy  string    `json:"applied_by,omitempty"`
}

type QualifierMetadataPayload struct {
	Identifier  string `json:"identifier"`
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
}

// Validate ensures the payload describes a well-formed series.
func (p *SeriesPayload) Validate() error {
	if strings.TrimSpace(p.Identifier) == "" {
		return fmt.Errorf("identifier is required")
	}
	if p.UTCOffsetMinutes < -maxOffsetMinutes || p.UTCOffsetMinutes > maxOffsetMinutes {
		return fmt.Errorf("utc_offset_minutes %d out of range", p.UTCOffsetMinutes)
	}

	seen := make(map[int64]struct{}, len(p.Points))
	for i, pt := range p.Points {
		if pt.Time.IsZero() {
			return fmt.Errorf("points[%d].time is required", i)
		}
		key := pt.Time.UnixNano()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("points[%d]: duplicate time %s", i, pt.Time.Format(time.RFC3339))
		}
		seen[key] = struct{}{}

		if d := strings.TrimSpace(pt.Display); d != "" {
			if _, err := decimal.NewFromString(strings.ReplaceAll(d, ",", "")); err != nil {
				return fmt.Errorf("points[%d].display %q is not a number", i, pt.Display)
			}
		}
	}

	for i, q := range p.Qualifiers {
		if strings.TrimSpace(q.Identifier) == "" {
			return fmt.Errorf("qualifiers[%d].identifier is required", i)
		}
		if q.StartTime.IsZero() || q.EndTime.IsZero() {
			return fmt.Errorf("qualifiers[%d]: start_time and end_time are required", i)
		}
		if q.EndTime.Before(q.StartTime) {
			return fmt.Errorf("qualifiers[%d]: end_time is before start_time", i)
		}
	}

	for i, m := range p.QualifierMetadata {
		if strings.TrimSpace(m.Identifier) == "" {
			return fmt.Errorf("qualifier_metadata[%d].identifier is required", i)
		}
	}

	return nil
}

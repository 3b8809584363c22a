package v1

import (
	"fmt"
	"strings"
	"time"
)

// ReportRequest asks for the extremes of a primary series over a range of
// calendar days, optionally alongside its upchain and derived companions.
type ReportRequest struct {
	// Primary is the unique ID of the series the report is about. REQUIRED.
	Primary string `form:"primary" json:"primary"`

	// Upchain is the unique ID of the series feeding the primary (e.g. stage
	// for a discharge series). Its extremes are correlated with the primary's.
	Upchain string `form:"upchain" json:"upchain,omitempty"`

	// Derived is the unique ID of a daily statistic computed from the primary.
	Derived string `form:"derived" json:"derived,omitempty"`

	// StartDate and EndDate bound the report, inclusive, as YYYY-MM-DD in the
	// primary series' own UTC offset.
	StartDate string `form:"start" json:"start"`
	EndDate   string `form:"end" json:"end"`

	// RequestingUser is echoed into the report metadata.
	RequestingUser string `form:"user" json:"requesting_user,omitempty"`

	start time.Time
	end   time.Time
}

// Validate checks the request and parses its dates.
func (r *ReportRequest) Validate() error {
	r.Primary = strings.TrimSpace(r.Primary)
	r.Upchain = strings.TrimSpace(r.Upchain)
	r.Derived = strings.TrimSpace(r.Derived)

	if r.Primary == "" {
		return fmt.Errorf("primary is required")
	}

	start, err := parseDate("start", r.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate("end", r.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("end %s is before start %s", r.EndDate, r.StartDate)
	}

	r.start, r.end = start, end
	return nil
}

// Start returns the parsed start date. Valid after Validate.
func (r *ReportRequest) Start() time.Time { return r.start }

// End returns the parsed end date. Valid after Validate.
func (r *ReportRequest) End() time.Time { return r.end }

// SeriesIDs lists the requested unique IDs, primary first, skipping unset roles.
func (r *ReportRequest) SeriesIDs() []string {
	ids := []string{r.Primary}
	for _, id := range []string{r.Upchain, r.Derived} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD, got %q", field, value)
	}
	return t, nil
}

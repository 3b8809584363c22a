package report

import (
	"github.com/aevon-lab/extremes/internal/core/extremes"
	"github.com/aevon-lab/extremes/internal/core/storage"
)

// Role names a series' place in the report.
const (
	RolePrimary = "primary"
	RoleUpchain = "upchain"
	RoleDerived = "dv"
)

const (
	reportTitle = "Extremes"
	reportType  = "extremes"
)

// Extreme is one direction of a section: the tie group and the companion
// series' points at the same moments.
type Extreme struct {
	Points         []extremes.Point `json:"points"`
	RelatedPrimary []extremes.Point `json:"relatedPrimary,omitempty"`
	RelatedUpchain []extremes.Point `json:"relatedUpchain,omitempty"`
}

// Section is the extremes of one role. A series without values yields empty
// point lists and cleared flags.
type Section struct {
	Max             Extreme              `json:"max"`
	Min             Extreme              `json:"min"`
	MultipleMaxFlag bool                 `json:"multipleMaxFlag"`
	MultipleMinFlag bool                 `json:"multipleMinFlag"`
	Qualifiers      []extremes.Qualifier `json:"qualifiers"`
}

// Metadata describes the report and the series it was built from.
type Metadata struct {
	Title          string `json:"title"`
	ReportType     string `json:"reportType"`
	RequestID      string `json:"requestId"`
	RequestingUser string `json:"requestingUser,omitempty"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Timezone       string `json:"timezone"`

	StationID   string `json:"stationId"`
	StationName string `json:"stationName"`

	PrimaryLabel     string `json:"primaryLabel"`
	PrimaryParameter string `json:"primaryParameter"`
	PrimaryUnit      string `json:"primaryUnit"`

	UpchainLabel     string `json:"upchainLabel,omitempty"`
	UpchainParameter string `json:"upchainParameter,omitempty"`
	UpchainUnit      string `json:"upchainUnit,omitempty"`

	DvLabel       string `json:"dvLabel,omitempty"`
	DvParameter   string `json:"dvParameter,omitempty"`
	DvUnit        string `json:"dvUnit,omitempty"`
	DvComputation string `json:"dvComputation,omitempty"`

	QualifierMetadata map[string]storage.QualifierMetadata `json:"qualifierMetadata"`
}

// Report is the extremes report. Upchain and Derived are nil unless requested.
type Report struct {
	Metadata Metadata `json:"reportMetadata"`
	Primary  *Section `json:"primary"`
	Upchain  *Section `json:"upchain,omitempty"`
	Derived  *Section `json:"dv,omitempty"`
}

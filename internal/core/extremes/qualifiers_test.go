package extremes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicableQualifiers(t *testing.T) {
	t0 := Instant(time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC))
	t1 := Instant(time.Date(2019, 6, 2, 12, 0, 0, 0, time.UTC))

	point := Qualifier{Identifier: "ICE", StartTime: t0, EndTime: t0}
	endsAtT0 := Qualifier{Identifier: "EST", StartTime: Instant(t0.Time().Add(-time.Hour)), EndTime: t0}
	startsAtT1 := Qualifier{Identifier: "PROV", StartTime: t1, EndTime: Instant(t1.Time().Add(time.Hour))}
	spansBoth := Qualifier{Identifier: "EQP", StartTime: t0, EndTime: t1}
	before := Qualifier{Identifier: "OLD", StartTime: Instant(t0.Time().Add(-48 * time.Hour)), EndTime: Instant(t0.Time().Add(-time.Second))}
	sameIDOtherRange := Qualifier{Identifier: "ICE", StartTime: t1, EndTime: t1}

	tests := []struct {
		name       string
		qualifiers []Qualifier
		points     []Point
		want       []Qualifier
	}{
		{
			name:       "instant interval containing only its own bound",
			qualifiers: []Qualifier{point},
			points:     []Point{pt(t0, "1")},
			want:       []Qualifier{point},
		},
		{
			name:       "both ends inclusive",
			qualifiers: []Qualifier{endsAtT0, startsAtT1, before},
			points:     []Point{pt(t0, "1"), pt(t1, "1")},
			want:       []Qualifier{endsAtT0, startsAtT1},
		},
		{
			name:       "first seen while walking points then qualifiers",
			qualifiers: []Qualifier{startsAtT1, spansBoth, point},
			points:     []Point{pt(t0, "1"), pt(t1, "1")},
			want:       []Qualifier{spansBoth, point, startsAtT1},
		},
		{
			name:       "duplicates by whole record",
			qualifiers: []Qualifier{point, point, sameIDOtherRange},
			points:     []Point{pt(t0, "1"), pt(t1, "1")},
			want:       []Qualifier{point, sameIDOtherRange},
		},
		{
			name:       "no qualifiers",
			qualifiers: nil,
			points:     []Point{pt(t0, "1")},
			want:       []Qualifier{},
		},
		{
			name:       "no points",
			qualifiers: []Qualifier{point},
			points:     nil,
			want:       []Qualifier{},
		},
		{
			name:       "daily point inside instant interval",
			qualifiers: []Qualifier{{Identifier: "D", StartTime: Date(2019, 6, 1), EndTime: Date(2019, 6, 3)}},
			points:     []Point{pt(Date(2019, 6, 3), "1")},
			want:       []Qualifier{{Identifier: "D", StartTime: Date(2019, 6, 1), EndTime: Date(2019, 6, 3)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplicableQualifiers(tt.qualifiers, tt.points)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				require.Truef(t, tt.want[i].Equal(got[i]), "qualifier %d: want %s, got %s", i, tt.want[i].Identifier, got[i].Identifier)
			}
		})
	}
}

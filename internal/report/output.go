package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/aevon-lab/extremes/internal/core/extremes"
	"github.com/aevon-lab/extremes/internal/core/precision"
)

var (
	headingColor  = color.New(color.FgCyan, color.Bold)
	multipleColor = color.New(color.FgYellow, color.Bold)
	emptyColor    = color.New(color.FgHiBlack)
)

// WriteJSON writes rep as indented JSON.
func WriteJSON(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteTable writes rep as one table per section. places rounds values for
// display; a negative value prints them as stored.
func WriteTable(w io.Writer, rep *Report, places int32) error {
	meta := rep.Metadata
	if _, err := headingColor.Fprintf(w, "%s: %s (%s)\n", meta.Title, meta.StationName, meta.StationID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s to %s, %s, request %s\n\n", meta.StartDate, meta.EndDate, meta.Timezone, meta.RequestID); err != nil {
		return err
	}

	sections := []struct {
		title   string
		label   string
		section *Section
	}{
		{"Primary", meta.PrimaryLabel, rep.Primary},
		{"Upchain", meta.UpchainLabel, rep.Upchain},
		{"Derived", meta.DvLabel, rep.Derived},
	}
	for _, s := range sections {
		if s.section == nil {
			continue
		}
		if err := writeSection(w, s.title, s.label, s.section, places); err != nil {
			return fmt.Errorf("write %s section: %w", strings.ToLower(s.title), err)
		}
	}

	if len(meta.QualifierMetadata) > 0 {
		if _, err := headingColor.Fprintln(w, "Qualifiers"); err != nil {
			return err
		}
		for _, id := range reportedQualifiers(rep) {
			m, ok := meta.QualifierMetadata[id]
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(w, "  %s  %s  %s\n", id, m.Code, m.DisplayName); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSection(w io.Writer, title, label string, s *Section, places int32) error {
	if _, err := headingColor.Fprintf(w, "%s %s\n", title, label); err != nil {
		return err
	}
	if len(s.Max.Points) == 0 && len(s.Min.Points) == 0 {
		_, err := emptyColor.Fprint(w, "  no data available\n\n")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Extreme", "Time", "Value", "Related", "Flag"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, dir := range []struct {
		name     string
		extreme  Extreme
		multiple bool
	}{
		{"max", s.Max, s.MultipleMaxFlag},
		{"min", s.Min, s.MultipleMinFlag},
	} {
		related := slices.Concat(dir.extreme.RelatedPrimary, dir.extreme.RelatedUpchain)
		flag := ""
		if dir.multiple {
			flag = multipleColor.Sprint("multiple")
		}
		for _, p := range dir.extreme.Points {
			data = append(data, []string{
				dir.name,
				p.Time.String(),
				formatValue(p, places),
				formatRelated(p, related, places),
				flag,
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(s.Qualifiers) > 0 {
		ids := make([]string, len(s.Qualifiers))
		for i, q := range s.Qualifiers {
			ids[i] = q.Identifier
		}
		if _, err := fmt.Fprintf(w, "  qualifiers: %s\n", strings.Join(ids, ", ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func formatValue(p extremes.Point, places int32) string {
	if !p.HasValue() {
		return "-"
	}
	return precision.Display(p.Value.Decimal, places)
}

// formatRelated lists the related values recorded at p's time.
func formatRelated(p extremes.Point, related []extremes.Point, places int32) string {
	var values []string
	for _, r := range related {
		if r.Time.Equal(p.Time) {
			values = append(values, formatValue(r, places))
		}
	}
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, " ")
}

package filesystem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/aevon-lab/extremes/internal/core/storage"
)

// MetadataFile holds the qualifier metadata list under the store root.
const MetadataFile = "qualifiers.yaml"

// Store implements storage.SeriesStore over a directory of YAML documents,
// one per series: root/{unique_id}.yaml. It is read-only; add or edit files
// on disk instead.
type Store struct {
	rootDir string
}

var _ storage.SeriesStore = (*Store)(nil)

// NewStore creates a store rooted at rootDir.
func NewStore(rootDir string) *Store {
	return &Store{rootDir: rootDir}
}

type seriesDocument struct {
	Description storage.SeriesDescription `yaml:"description"`
	Points      []pointDocument           `yaml:"points"`
	Qualifiers  []qualifierDocument       `yaml:"qualifiers"`
}

type pointDocument struct {
	Time    string `yaml:"time"`
	Value   string `yaml:"value"`
	Display string `yaml:"display"`
}

type qualifierDocument struct {
	Identifier string `yaml:"identifier"`
	Start      string `yaml:"start"`
	End        string `yaml:"end"`
	AppliedBy  string `yaml:"applied_by"`
}

type metadataDocument struct {
	Identifier  string `yaml:"identifier"`
	Code        string `yaml:"code"`
	DisplayName string `yaml:"display_name"`
}

// DescribeSeries reads the description block of every existing document.
func (s *Store) DescribeSeries(_ context.Context, uniqueIDs []string) ([]storage.SeriesDescription, error) {
	var out []storage.SeriesDescription
	for _, id := range uniqueIDs {
		doc, err := s.load(id)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		desc := doc.Description
		desc.UniqueID = id
		out = append(out, desc)
	}
	return out, nil
}

// RetrievePoints returns the points in [from, to) ordered by timestamp.
func (s *Store) RetrievePoints(_ context.Context, uniqueID string, from, to time.Time) ([]storage.RawPoint, error) {
	doc, err := s.load(uniqueID)
	if err != nil {
		return nil, err
	}

	var out []storage.RawPoint
	for i, p := range doc.Points {
		ts, err := time.Parse(time.RFC3339Nano, p.Time)
		if err != nil {
			return nil, fmt.Errorf("series %s point %d: invalid time %q: %w", uniqueID, i, p.Time, err)
		}
		if ts.Before(from) || !ts.Before(to) {
			continue
		}
		raw := storage.RawPoint{Timestamp: ts, Display: strings.TrimSpace(p.Display)}
		if v := strings.TrimSpace(p.Value); v != "" {
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil, fmt.Errorf("series %s point %d: invalid value %q: %w", uniqueID, i, p.Value, err)
			}
			raw.Value = decimal.NewNullDecimal(d)
		}
		out = append(out, raw)
	}

	slices.SortStableFunc(out, func(a, b storage.RawPoint) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return out, nil
}

// RetrieveQualifiers returns the qualifiers overlapping [from, to).
func (s *Store) RetrieveQualifiers(_ context.Context, uniqueID string, from, to time.Time) ([]storage.RawQualifier, error) {
	doc, err := s.load(uniqueID)
	if err != nil {
		return nil, err
	}

	var out []storage.RawQualifier
	for _, q := range doc.Qualifiers {
		start, err := time.Parse(time.RFC3339Nano, q.Start)
		if err != nil {
			return nil, fmt.Errorf("series %s qualifier %s: invalid start %q: %w", uniqueID, q.Identifier, q.Start, err)
		}
		end, err := time.Parse(time.RFC3339Nano, q.End)
		if err != nil {
			return nil, fmt.Errorf("series %s qualifier %s: invalid end %q: %w", uniqueID, q.Identifier, q.End, err)
		}
		if !start.Before(to) || end.Before(from) {
			continue
		}
		out = append(out, storage.RawQualifier{
			Identifier: q.Identifier,
			StartTime:  start,
			EndTime:    end,
			AppliedBy:  q.AppliedBy,
		})
	}
	return out, nil
}

// LookupQualifierMetadata reads root/qualifiers.yaml. A missing file means no
// metadata is known.
func (s *Store) LookupQualifierMetadata(_ context.Context, identifiers []string) ([]storage.QualifierMetadata, error) {
	content, err := os.ReadFile(filepath.Join(s.rootDir, MetadataFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read qualifier metadata: %w", err)
	}

	var docs []metadataDocument
	if err := yaml.Unmarshal(content, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse qualifier metadata: %w", err)
	}

	wanted := make(map[string]struct{}, len(identifiers))
	for _, id := range identifiers {
		wanted[id] = struct{}{}
	}

	var out []storage.QualifierMetadata
	for _, d := range docs {
		if _, ok := wanted[d.Identifier]; !ok {
			continue
		}
		out = append(out, storage.QualifierMetadata{
			Identifier:  d.Identifier,
			Code:        d.Code,
			DisplayName: d.DisplayName,
		})
	}
	return out, nil
}

// Ping verifies the root directory is still readable.
func (s *Store) Ping(_ context.Context) error {
	info, err := os.Stat(s.rootDir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.rootDir)
	}
	return nil
}

// SaveSeries is not supported: documents are managed on disk.
func (s *Store) SaveSeries(_ context.Context, data *storage.SeriesData) error {
	return fmt.Errorf("%w: add %s directly", storage.ErrReadOnly, s.path(data.Description.UniqueID))
}

func (s *Store) path(uniqueID string) string {
	return filepath.Join(s.rootDir, uniqueID+".yaml")
}

func (s *Store) load(uniqueID string) (*seriesDocument, error) {
	if uniqueID == "" || strings.ContainsAny(uniqueID, `/\`) || strings.Contains(uniqueID, "..") {
		return nil, fmt.Errorf("%w: invalid unique id %q", storage.ErrNotFound, uniqueID)
	}

	content, err := os.ReadFile(s.path(uniqueID))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, uniqueID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read series %s: %w", uniqueID, err)
	}

	var doc seriesDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse series %s: %w", uniqueID, err)
	}

	slog.Debug("[FileSystem] Loaded series document",
		"series", uniqueID,
		"points", len(doc.Points),
		"qualifiers", len(doc.Qualifiers))
	return &doc, nil
}

package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aevon-lab/extremes/internal/core/storage"
	"github.com/aevon-lab/extremes/internal/metrics"
)

// DefaultCacheCapacity is the default number of descriptions to cache.
const DefaultCacheCapacity = 1024

// Registry serves series descriptions from an LRU cache backed by a store.
type Registry struct {
	store   storage.SeriesStore
	cache   *lruCache
	metrics *metrics.Manager
}

// NewRegistry creates a registry. m may be nil.
func NewRegistry(store storage.SeriesStore, cacheCapacity int, m *metrics.Manager) *Registry {
	if store == nil {
		panic("catalog: series store is required")
	}
	if cacheCapacity <= 0 {
		cacheCapacity = DefaultCacheCapacity
	}
	return &Registry{
		store:   store,
		cache:   newLRUCache(cacheCapacity),
		metrics: m,
	}
}

// Describe returns the descriptions of the requested unique IDs keyed by ID.
// Cached entries are served directly; all misses are fetched in one store
// call. IDs unknown to the store are absent from the result.
func (r *Registry) Describe(ctx context.Context, uniqueIDs []string) (map[string]storage.SeriesDescription, error) {
	out := make(map[string]storage.SeriesDescription, len(uniqueIDs))
	var misses []string
	seen := make(map[string]struct{}, len(uniqueIDs))

	for _, id := range uniqueIDs {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if desc, ok := r.cache.get(id); ok {
			out[id] = desc
			continue
		}
		misses = append(misses, id)
	}

	r.metrics.CatalogLookup(len(out), len(misses))
	if len(misses) == 0 {
		return out, nil
	}

	fetched, err := r.store.DescribeSeries(ctx, misses)
	if err != nil {
		return nil, fmt.Errorf("describe series: %w", err)
	}
	for _, desc := range fetched {
		r.cache.put(desc)
		out[desc.UniqueID] = desc
	}

	slog.Debug("[Catalog] Fetched descriptions",
		"requested", len(misses),
		"found", len(fetched))
	return out, nil
}

// Invalidate drops a cached description, e.g. after the series was re-ingested.
func (r *Registry) Invalidate(uniqueID string) {
	r.cache.invalidate(uniqueID)
}

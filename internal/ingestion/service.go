package ingestion

import (
	"github.com/aevon-lab/extremes/internal/catalog"
	"github.com/aevon-lab/extremes/internal/core/storage"
	"github.com/aevon-lab/extremes/internal/metrics"
	"github.com/gin-gonic/gin"
)

type Service struct {
	store            storage.SeriesStore
	catalog          *catalog.Registry
	metrics          *metrics.Manager
	maxBodySizeBytes int
}

// NewService creates the series ingestion service. m may be nil.
func NewService(store storage.SeriesStore, registry *catalog.Registry, m *metrics.Manager, maxBodySizeMB int) *Service {
	if store == nil {
		panic("ingestion: store must not be nil")
	}
	if registry == nil {
		panic("ingestion: catalog must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		store:            store,
		catalog:          registry,
		metrics:          m,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.PUT("/v1/series/:unique_id", s.PutSeriesHandler)
	r.GET("/v1/series/:unique_id", s.DescribeSeriesHandler)
}

package ingestion

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	v1 "github.com/aevon-lab/extremes/internal/api/v1"
	httperr "github.com/aevon-lab/extremes/internal/core/errors"
	"github.com/aevon-lab/extremes/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed  = "Failed to read request body"
	msgInvalidJSON     = "Invalid JSON body"
	msgPersistFailed   = "Failed to persist series"
	msgReadOnlyStore   = "Series store does not accept writes"
	msgSeriesNotFound  = "Series not found"
	msgDescribeFailed  = "Failed to describe series"
	msgMissingUniqueID = "unique_id is required"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// PutSeriesHandler handles PUT /v1/series/:unique_id.
// Points replace stored points at the same timestamp; qualifiers replace the stored set.
func (s *Service) PutSeriesHandler(c *gin.Context) {
	uniqueID := strings.TrimSpace(c.Param("unique_id"))
	if uniqueID == "" {
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    msgMissingUniqueID,
		})
		return
	}

	payload, payloadSize, err := s.parsePayload(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := payload.Validate(); err != nil {
		slog.Warn("[Ingestion] Series validation failed", "unique_id", uniqueID, "error", err)
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidRequestError,
			message:    err.Error(),
		})
		return
	}

	slog.Info("[Ingestion] Received series",
		"unique_id", uniqueID,
		"identifier", payload.Identifier,
		"points", len(payload.Points),
		"qualifiers", len(payload.Qualifiers),
		"payload_size", payloadSize)

	data := toSeriesData(uniqueID, payload)
	if err := s.persistSeries(c.Request.Context(), data); err != nil {
		writeError(c, err)
		return
	}

	s.catalog.Invalidate(uniqueID)
	s.metrics.AddPointsIngested(len(data.Points))

	c.JSON(http.StatusOK, gin.H{
		"status":     "stored",
		"unique_id":  uniqueID,
		"points":     len(data.Points),
		"qualifiers": len(data.Qualifiers),
	})
}

// DescribeSeriesHandler handles GET /v1/series/:unique_id.
func (s *Service) DescribeSeriesHandler(c *gin.Context) {
	uniqueID := strings.TrimSpace(c.Param("unique_id"))

	descs, err := s.catalog.Describe(c.Request.Context(), []string{uniqueID})
	if err != nil {
		slog.Error("[Ingestion] Failed to describe series", "unique_id", uniqueID, "error", err)
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgDescribeFailed,
		})
		return
	}

	desc, ok := descs[uniqueID]
	if !ok {
		writeError(c, &ingestionError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpSeriesNotFoundError,
			message:    msgSeriesNotFound,
			details:    map[string]interface{}{"unique_id": uniqueID},
		})
		return
	}

	c.JSON(http.StatusOK, desc)
}

// parsePayload reads the raw request body and binds it into a SeriesPayload.
// Returns the parsed payload and the raw payload size (used for structured logging upstream).
func (s *Service) parsePayload(c *gin.Context) (*v1.SeriesPayload, int, *ingestionError) {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("[Ingestion] Failed to read request body", "error", err)
		return nil, 0, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("[Ingestion] Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var payload v1.SeriesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.Warn("[Ingestion] Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
			details:    err.Error(),
		}
	}

	return &payload, len(bodyBytes), nil
}

// persistSeries saves the series to the backing store.
func (s *Service) persistSeries(ctx context.Context, data *storage.SeriesData) *ingestionError {
	if err := s.store.SaveSeries(ctx, data); err != nil {
		if errors.Is(err, storage.ErrReadOnly) {
			return &ingestionError{
				statusCode: http.StatusMethodNotAllowed,
				errorType:  httperr.HttpReadOnlyStoreError,
				message:    msgReadOnlyStore,
			}
		}

		slog.Error("[Ingestion] Failed to persist series", "error", err, "unique_id", data.Description.UniqueID)
		return &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		}
	}

	return nil
}

func toSeriesData(uniqueID string, p *v1.SeriesPayload) *storage.SeriesData {
	data := &storage.SeriesData{
		Description: storage.SeriesDescription{
			UniqueID:              uniqueID,
			Identifier:            strings.TrimSpace(p.Identifier),
			Parameter:             p.Parameter,
			Unit:                  p.Unit,
			LocationIdentifier:    p.LocationIdentifier,
			LocationName:          p.LocationName,
			ComputationIdentifier: p.ComputationIdentifier,
			ComputationPeriod:     p.ComputationPeriod,
			UTCOffsetMinutes:      p.UTCOffsetMinutes,
		},
		Points:            make([]storage.RawPoint, 0, len(p.Points)),
		Qualifiers:        make([]storage.RawQualifier, 0, len(p.Qualifiers)),
		QualifierMetadata: make([]storage.QualifierMetadata, 0, len(p.QualifierMetadata)),
	}
	for _, pt := range p.Points {
		data.Points = append(data.Points, storage.RawPoint{
			Timestamp: pt.Time.UTC(),
			Value:     pt.Value,
			Display:   strings.TrimSpace(pt.Display),
		})
	}
	for _, q := range p.Qualifiers {
		data.Qualifiers = append(data.Qualifiers, storage.RawQualifier{
			Identifier: strings.TrimSpace(q.Identifier),
			StartTime:  q.StartTime.UTC(),
			EndTime:    q.EndTime.UTC(),
			AppliedBy:  q.AppliedBy,
		})
	}
	for _, m := range p.QualifierMetadata {
		data.QualifierMetadata = append(data.QualifierMetadata, storage.QualifierMetadata{
			Identifier:  strings.TrimSpace(m.Identifier),
			Code:        m.Code,
			DisplayName: m.DisplayName,
		})
	}
	return data
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}

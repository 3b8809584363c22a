package report

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	v1 "github.com/aevon-lab/extremes/internal/api/v1"
	httperr "github.com/aevon-lab/extremes/internal/core/errors"
	"github.com/aevon-lab/extremes/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// RequestingUserHeader carries the caller's identity into report metadata
// when the query string does not.
const RequestingUserHeader = "X-Requesting-User"

// RegisterRoutes registers the report API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/reports/extremes", s.HandleExtremesReport)
}

// HandleExtremesReport handles GET /v1/reports/extremes
// Query parameters: primary, upchain, derived, start, end, user
func (s *Service) HandleExtremesReport(c *gin.Context) {
	var req v1.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}
	if req.RequestingUser == "" {
		req.RequestingUser = c.GetHeader(RequestingUserHeader)
	}

	ctx := c.Request.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	rep, err := s.Build(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidRequestError,
				Message:   "Invalid report request",
				Details:   err.Error(),
			})
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, httperr.ErrorResponse{
				ErrorType: httperr.HttpSeriesNotFoundError,
				Message:   "Primary series not found",
				Details:   err.Error(),
			})
		case errors.Is(err, context.DeadlineExceeded):
			slog.Warn("[Report] Request timed out", "primary", req.Primary, "timeout", s.timeout)
			c.JSON(http.StatusGatewayTimeout, httperr.ErrorResponse{
				ErrorType: httperr.HttpTimeoutError,
				Message:   "Report took too long to build",
			})
		default:
			slog.Error("[Report] Failed to build report", "primary", req.Primary, "error", err)
			c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
				ErrorType: httperr.HttpInternalError,
				Message:   "Failed to build report",
				Details:   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, rep)
}

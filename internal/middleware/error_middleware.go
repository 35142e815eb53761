package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yusuf/schoolhub/internal/app/models/dto"
	"github.com/yusuf/schoolhub/internal/pkg/apperrors"
	"github.com/yusuf/schoolhub/internal/pkg/logger"
)

// HandleAPIError translates domain errors into API responses. Services
// raise typed errors; this is the only place that maps them to status
// codes.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
			Timestamp: time.Now(),
		})
	case errors.Is(err, apperrors.ErrConflict):
		// Raised when an enrollment link already exists
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error()),
			Timestamp: time.Now(),
		})
	default:
		// Unexpected failures are logged with full detail and surfaced
		// without internals
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
			Timestamp: time.Now(),
		})
	}
}

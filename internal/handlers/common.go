package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/douglasmeneses/NeuroScan-app/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ValidationErrorResponse carries the field-by-field breakdown of a rejected
// payload.
type ValidationErrorResponse struct {
	Error   string                  `json:"error"`
	Details []validation.FieldError `json:"details"`
}

func respondValidationError(c *gin.Context, details []validation.FieldError) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:   "Validation Error",
		Details: details,
	})
}

// respondError maps storage errors onto the API error taxonomy: missing rows
// become 404, uniqueness conflicts 409, everything else a 500 whose detail
// is only exposed outside release mode.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Resource already exists"})
	case errors.Is(err, context.DeadlineExceeded):
		log.Error("Request aborted by deadline", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Transaction timed out"})
	default:
		log.Error("Unhandled error", zap.Error(err))
		resp := ErrorResponse{Error: "Internal Server Error"}
		if gin.Mode() != gin.ReleaseMode {
			resp.Message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

// parseIDParam reads a positive integer path parameter or answers 400.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}

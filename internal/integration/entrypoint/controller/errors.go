// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/dto"
)

// respondAnalyticsError writes a 422 when err carries a data-integrity problem
// found while aggregating. It reports whether a response was written.
func respondAnalyticsError(ctx *gin.Context, err error) bool {
	var analyticsErr *domainerror.AnalyticsError
	if !errors.As(err, &analyticsErr) {
		return false
	}

	slog.Warn("Rejected transaction data",
		"code", analyticsErr.Code,
		"transactionID", analyticsErr.TransactionID,
		"value", analyticsErr.Value,
	)
	ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
		Error:   analyticsErr.Message,
		Code:    string(analyticsErr.Code),
		Details: analyticsErr.TransactionID,
	})
	return true
}

// respondInternalError logs err and writes a generic 500.
func respondInternalError(ctx *gin.Context, err error, code string) {
	slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  code,
	})
}

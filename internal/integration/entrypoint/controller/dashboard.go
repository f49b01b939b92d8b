// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merchant-dashboard/backend/internal/application/usecase/dashboard"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getOverviewUseCase *dashboard.GetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getOverviewUseCase *dashboard.GetOverviewUseCase) *DashboardController {
	return &DashboardController{
		getOverviewUseCase: getOverviewUseCase,
	}
}

// GetOverview handles GET /dashboard/overview requests.
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)

	output, err := c.getOverviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{
		MerchantID: userID,
		Email:      email,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	if respondAnalyticsError(ctx, err) {
		return
	}

	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := c.getStatusCodeForDashboardError(dashErr.Code)
		if statusCode == http.StatusInternalServerError {
			respondInternalError(ctx, err, string(dashErr.Code))
			return
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	respondInternalError(ctx, err, string(domainerror.ErrCodeDashboardInternalError))
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidLimit,
		domainerror.ErrCodeInvalidStatusFilter:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merchant-dashboard/backend/internal/application/usecase/profile"
	domainerror "github.com/merchant-dashboard/backend/internal/domain/error"
	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/middleware"
)

// ProfileController handles the merchant's dashboard profile.
type ProfileController struct {
	getProfileUseCase    *profile.GetProfileUseCase
	updateProfileUseCase *profile.UpdateProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getProfileUseCase *profile.GetProfileUseCase,
	updateProfileUseCase *profile.UpdateProfileUseCase,
) *ProfileController {
	return &ProfileController{
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
	}
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{
		UserID: userID,
		Email:  email,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": dto.ToProfileResponse(output)})
}

// Update handles PATCH /profile requests.
func (c *ProfileController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}
	email, _ := middleware.GetUserEmailFromContext(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidProfileRequest),
			Details: err.Error(),
		})
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), profile.UpdateProfileInput{
		UserID:           userID,
		Email:            email,
		DisplayName:      req.DisplayName,
		DigestEnabled:    req.DigestEnabled,
		DigestRecipients: req.DigestRecipients,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": dto.ToProfileResponse(output)})
}

// handleProfileError handles profile errors and returns appropriate HTTP responses.
func (c *ProfileController) handleProfileError(ctx *gin.Context, err error) {
	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	respondInternalError(ctx, err, "")
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merchant-dashboard/backend/internal/integration/entrypoint/dto"
)

// AuthController exposes sign-in settings. Sign-in itself happens with the identity provider.
type AuthController struct {
	enabledProviders []string
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(enabledProviders []string) *AuthController {
	providers := make([]string, len(enabledProviders))
	copy(providers, enabledProviders)
	return &AuthController{
		enabledProviders: providers,
	}
}

// Providers handles GET /auth/providers requests.
func (c *AuthController) Providers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ProvidersResponse{
		Providers: c.enabledProviders,
	})
}

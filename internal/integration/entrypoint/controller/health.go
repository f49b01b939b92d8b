// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/merchant-dashboard/backend/internal/application/adapter"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    func() bool
	redisHealthChecker func() bool
	clock              adapter.Clock
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker, redisHealthChecker func() bool, clock adapter.Clock) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		redisHealthChecker: redisHealthChecker,
		clock:              clock,
	}
}

// Check handles GET /health requests.
// The API reports "degraded" with 503 when the database is unreachable; Redis only affects rate limiting.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := componentStatus(h.dbHealthChecker)
	redisStatus := componentStatus(h.redisHealthChecker)

	status, code := "ok", http.StatusOK
	if dbStatus != "connected" {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Redis:     redisStatus,
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
	})
}

func componentStatus(checker func() bool) string {
	if checker != nil && checker() {
		return "connected"
	}
	return "disconnected"
}

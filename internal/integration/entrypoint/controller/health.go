// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	backend     string
	storeHealth func(ctx context.Context) error
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Backend   string `json:"backend"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(backend string, storeHealth func(ctx context.Context) error) *HealthController {
	return &HealthController{
		backend:     backend,
		storeHealth: storeHealth,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its blob store.
func (h *HealthController) Check(c *gin.Context) {
	storeStatus := "disconnected"
	status := http.StatusOK
	if h.storeHealth != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.storeHealth(ctx); err == nil {
			storeStatus = "connected"
		} else {
			status = http.StatusServiceUnavailable
		}
	}

	response := HealthResponse{
		Status:    "ok",
		Store:     storeStatus,
		Backend:   h.backend,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if status != http.StatusOK {
		response.Status = "degraded"
	}

	c.JSON(status, response)
}

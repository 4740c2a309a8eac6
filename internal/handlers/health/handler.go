// Package health serves the fixed-payload health endpoint.
package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/creaturelab/creature-api/internal/pkg/clock"
)

// Handler serves the health route
type Handler struct {
	clock clock.Clock
}

// NewHandler creates a new health handler
func NewHandler(clk clock.Clock) *Handler {
	if clk == nil {
		clk = clock.New()
	}
	return &Handler{clock: clk}
}

// RegisterRoutes mounts the health route on the given router
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", h.health)
}

// health reports a fixed payload. It has no dependency on the upstream
// services: the process being able to answer is the signal.
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": h.clock.Now().UTC().Format(time.RFC3339),
	})
}

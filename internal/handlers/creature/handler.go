// Package creature exposes the creature lookup operations over HTTP.
package creature

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creaturelab/creature-api/internal/errors"
	creatureorch "github.com/creaturelab/creature-api/internal/orchestrators/creature"
)

// Handler serves the creature routes
type Handler struct {
	service creatureorch.Service
}

// HandlerConfig holds the dependencies for the creature handler
type HandlerConfig struct {
	CreatureService creatureorch.Service
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CreatureService == nil {
		vb.RequiredField("CreatureService")
	}

	return vb.Build()
}

// NewHandler creates a new creature handler with the provided dependencies
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{service: cfg.CreatureService}, nil
}

// RegisterRoutes mounts the creature routes on the given group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/styled/:name", h.getStyledCreature) // GET /creature/styled/:name
	rg.GET("/:name", h.getCreature)              // GET /creature/:name
}

func (h *Handler) getCreature(c *gin.Context) {
	output, err := h.service.GetCreature(c.Request.Context(), &creatureorch.GetCreatureInput{
		Name: c.Param("name"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Record)
}

func (h *Handler) getStyledCreature(c *gin.Context) {
	output, err := h.service.GetStyledCreature(c.Request.Context(), &creatureorch.GetStyledCreatureInput{
		Name: c.Param("name"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Record)
}

// writeError maps the error taxonomy onto HTTP statuses
func writeError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	c.JSON(code.HTTPStatus(), gin.H{
		"code":  code.String(),
		"error": errors.GetMessage(err),
	})
}

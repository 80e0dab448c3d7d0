package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"landing-builder-backend/internal/ai"
)

type HealthHandler struct {
	gateway *ai.Gateway
}

func NewHealthHandler(gateway *ai.Gateway) *HealthHandler {
	return &HealthHandler{gateway: gateway}
}

// Health handles GET /health and reports per-model availability.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"models": h.gateway.Status(),
	})
}

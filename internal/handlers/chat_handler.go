package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"landing-builder-backend/internal/agent"
	"landing-builder-backend/internal/ai"
	"landing-builder-backend/internal/config"
	"landing-builder-backend/internal/middleware"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/service"
	"landing-builder-backend/internal/storage"
	"landing-builder-backend/pkg/logger"
)

type ChatHandler struct {
	service *service.ChatService
	cfg     *config.Config
}

func NewChatHandler(chatService *service.ChatService, cfg *config.Config) *ChatHandler {
	return &ChatHandler{service: chatService, cfg: cfg}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required and must not contain HTML"})
		return
	}

	session, result, err := h.service.Chat(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	middleware.RecordGeneration(string(result.Source))
	c.JSON(http.StatusOK, models.ChatResponse{
		Session: session,
		Config:  session.LPConfig,
	})
}

// GetSession handles GET /api/session/:id.
func (h *ChatHandler) GetSession(c *gin.Context) {
	session, err := h.service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *ChatHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyMessage), errors.Is(err, service.ErrMessageTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ai.ErrCredentialRevoked):
		// Always surfaced verbatim, the user has to rotate their key.
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		var terminal *agent.TerminalError
		if errors.As(err, &terminal) {
			middleware.RecordGenerationFailure()
		}
		logger.ErrorCtx(c.Request.Context(), "Chat request failed", map[string]interface{}{
			"error": err.Error(),
		})
		message := "internal server error"
		if !h.cfg.IsProduction() {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}

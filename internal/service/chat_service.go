package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"landing-builder-backend/internal/agent"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/storage"
	"landing-builder-backend/pkg/logger"
	"landing-builder-backend/pkg/validator"
)

var (
	ErrEmptyMessage   = errors.New("message is required")
	ErrMessageTooLong = errors.New("message exceeds the maximum length")
)

// Processor is the agent surface the chat service depends on.
type Processor interface {
	Process(ctx context.Context, message string, history []models.ChatMessage, current *models.LandingPage, userKey string) (*agent.Result, error)
}

// ChatService owns the session lifecycle around a generation: load or create
// the session, record the user message, run the agent and persist the
// updated transcript and document.
type ChatService struct {
	store         storage.SessionStore
	agent         Processor
	maxMessageLen int
}

func NewChatService(store storage.SessionStore, processor Processor, maxMessageLen int) *ChatService {
	return &ChatService{
		store:         store,
		agent:         processor,
		maxMessageLen: maxMessageLen,
	}
}

// Chat processes one user message. An unknown or expired session id starts a
// fresh session under a new id rather than failing.
func (s *ChatService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatSession, *agent.Result, error) {
	message := validator.TrimSpaces(validator.SanitizeString(req.Message))
	if message == "" {
		return nil, nil, ErrEmptyMessage
	}
	if s.maxMessageLen > 0 && len(message) > s.maxMessageLen {
		return nil, nil, fmt.Errorf("%w: %d > %d", ErrMessageTooLong, len(message), s.maxMessageLen)
	}

	session, err := s.loadOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UnixMilli()
	session.Messages = append(session.Messages, models.ChatMessage{
		Role:      models.RoleUser,
		Content:   message,
		Timestamp: now,
	})

	result, err := s.agent.Process(ctx, message, session.Messages, session.LPConfig, req.UserKey)
	if err != nil {
		return nil, nil, err
	}

	session.LPConfig = result.Config
	session.Messages = append(session.Messages, models.ChatMessage{
		Role:      models.RoleAssistant,
		Content:   result.Explanation,
		Timestamp: time.Now().UnixMilli(),
	})
	session.UpdatedAt = time.Now().UnixMilli()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.InfoCtx(ctx, "Chat processed", map[string]interface{}{
		"session":  session.ID,
		"source":   string(result.Source),
		"messages": len(session.Messages),
	})
	return session, result, nil
}

// GetSession returns a stored session or storage.ErrNotFound.
func (s *ChatService) GetSession(ctx context.Context, id string) (*models.ChatSession, error) {
	return s.store.Get(ctx, id)
}

func (s *ChatService) loadOrCreate(ctx context.Context, id string) (*models.ChatSession, error) {
	if id != "" {
		session, err := s.store.Get(ctx, id)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		logger.DebugCtx(ctx, "Session not found, starting a new one", map[string]interface{}{
			"requested": id,
		})
	}

	now := time.Now().UnixMilli()
	return &models.ChatSession{
		ID:        uuid.New().String(),
		Messages:  []models.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

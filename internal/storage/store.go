package storage

import (
	"context"
	"errors"

	"landing-builder-backend/internal/models"
)

// ErrNotFound is returned when a session id is unknown or its entry expired.
var ErrNotFound = errors.New("session not found")

// SessionStore persists chat sessions. Implementations apply the configured
// TTL on Save, an expired session behaves exactly like a missing one.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.ChatSession, error)
	Save(ctx context.Context, session *models.ChatSession) error
	Delete(ctx context.Context, id string) error
	Close() error
}

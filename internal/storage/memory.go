package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"landing-builder-backend/internal/models"
)

const janitorInterval = 10 * time.Minute

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory with TTL eviction. It is the
// default backend for local development and the unit tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	done    chan struct{}
	once    sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrNotFound
	}

	var session models.ChatSession
	if err := json.Unmarshal(entry.payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MemoryStore) Save(ctx context.Context, session *models.ChatSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[session.ID] = memoryEntry{
		payload:   payload,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

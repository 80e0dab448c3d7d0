package storage

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"landing-builder-backend/internal/models"
	"landing-builder-backend/pkg/logger"
)

const sweepInterval = 10 * time.Minute

// SessionPayload stores the serialized session as a jsonb column.
type SessionPayload []byte

func (p SessionPayload) Value() (driver.Value, error) {
	if len(p) == 0 {
		return nil, nil
	}
	return []byte(p), nil
}

func (p *SessionPayload) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		*p = append((*p)[:0], v...)
		return nil
	case string:
		*p = SessionPayload(v)
		return nil
	case nil:
		*p = nil
		return nil
	default:
		return fmt.Errorf("unsupported payload type %T", value)
	}
}

// SessionRecord is the database row backing one chat session.
type SessionRecord struct {
	ID        string         `gorm:"primaryKey;size:64"`
	Payload   SessionPayload `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

func (SessionRecord) TableName() string {
	return "chat_sessions"
}

// PostgresStore persists sessions in Postgres. Expired rows are filtered on
// read and removed by a background sweep.
type PostgresStore struct {
	db   *gorm.DB
	ttl  time.Duration
	done chan struct{}
	once sync.Once
}

func NewPostgresStore(db *gorm.DB, ttl time.Duration) (*PostgresStore, error) {
	if err := db.AutoMigrate(&SessionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session table: %w", err)
	}

	s := &PostgresStore{
		db:   db,
		ttl:  ttl,
		done: make(chan struct{}),
	}
	go s.sweep()
	return s, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	var record SessionRecord
	err := s.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, time.Now()).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var session models.ChatSession
	if err := json.Unmarshal(record.Payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *PostgresStore) Save(ctx context.Context, session *models.ChatSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	record := SessionRecord{
		ID:        session.ID,
		Payload:   payload,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at", "expires_at"}),
		}).
		Create(&record).Error
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&SessionRecord{}, "id = ?", id).Error
}

func (s *PostgresStore) Close() error {
	s.once.Do(func() { close(s.done) })

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *PostgresStore) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			result := s.db.Delete(&SessionRecord{}, "expires_at <= ?", time.Now())
			if result.Error != nil {
				logger.Error("Failed to sweep expired sessions", map[string]interface{}{
					"error": result.Error.Error(),
				})
				continue
			}
			if result.RowsAffected > 0 {
				logger.Debug("Swept expired sessions", map[string]interface{}{
					"count": result.RowsAffected,
				})
			}
		}
	}
}

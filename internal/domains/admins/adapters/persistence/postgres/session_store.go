package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	adminports "github.com/unikontroll/storefront-api/internal/domains/admins/ports"
)

var _ adminports.SessionStore = (*SessionStore)(nil)

// SessionStore persists admin sessions in PostgreSQL. Caller owns the DB
// lifecycle.
type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

type sessionRecord struct {
	Token     string    `gorm:"primaryKey;column:token;size:512"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "admin_sessions" }

// Save upserts a session token with its expiry.
func (s *SessionStore) Save(ctx context.Context, token string, expiresAt time.Time) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("session token is required")
	}
	rec := sessionRecord{Token: token, ExpiresAt: expiresAt}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"expires_at", "updated_at"}),
		}).
		Create(&rec).Error
}

// Get returns the stored expiry for a token.
func (s *SessionStore) Get(ctx context.Context, token string) (time.Time, error) {
	if err := s.ensureDB(); err != nil {
		return time.Time{}, err
	}
	var rec sessionRecord
	err := s.db.WithContext(ctx).First(&rec, "token = ?", strings.TrimSpace(token)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, adminports.ErrSessionNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return rec.ExpiresAt, nil
}

// Delete revokes a token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Delete(&sessionRecord{}, "token = ?", strings.TrimSpace(token))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return adminports.ErrSessionNotFound
	}
	return nil
}

// PurgeExpired removes every session past its expiry.
func (s *SessionStore) PurgeExpired(ctx context.Context) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&sessionRecord{}).Error
}

func (s *SessionStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres session store is not configured")
	}
	return nil
}

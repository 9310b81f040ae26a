package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/analog-mfg/factory-ops-api/internal/models"
)

// SettingsRepository stores one preference row per user with upsert semantics.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository creates a new instance of SettingsRepository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row for a user email.
func (r *SettingsRepository) Get(ctx context.Context, email string) (*models.Settings, error) {
	const query = `SELECT user_email, push_notifications, dark_mode, email_notifications, auto_logout, updated_at FROM user_settings WHERE user_email = $1 LIMIT 1`
	var settings models.Settings
	if err := r.db.GetContext(ctx, &settings, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &settings, nil
}

// Upsert creates or overwrites the settings row for a user.
func (r *SettingsRepository) Upsert(ctx context.Context, settings *models.Settings) error {
	if settings.UpdatedAt.IsZero() {
		settings.UpdatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO user_settings (user_email, push_notifications, dark_mode, email_notifications, auto_logout, updated_at)
		VALUES (:user_email, :push_notifications, :dark_mode, :email_notifications, :auto_logout, :updated_at)
		ON CONFLICT (user_email) DO UPDATE SET
			push_notifications = EXCLUDED.push_notifications,
			dark_mode = EXCLUDED.dark_mode,
			email_notifications = EXCLUDED.email_notifications,
			auto_logout = EXCLUDED.auto_logout,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, settings); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
)

type settingsRepository interface {
	Get(ctx context.Context, email string) (*models.Settings, error)
	Upsert(ctx context.Context, settings *models.Settings) error
}

// SettingsService reads and upserts per-user preference records.
type SettingsService struct {
	repo   settingsRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(repo settingsRepository, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, logger: logger, now: time.Now}
}

// Get returns the settings row for a user.
func (s *SettingsService) Get(ctx context.Context, email string) (*models.Settings, error) {
	settings, err := s.repo.Get(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "settings not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to fetch settings")
	}
	return settings, nil
}

// Save creates or overwrites the settings row for a user.
func (s *SettingsService) Save(ctx context.Context, email string, req dto.SaveSettingsRequest) (*models.Settings, error) {
	settings := &models.Settings{
		UserEmail:          email,
		PushNotifications:  req.PushNotifications,
		DarkMode:           req.DarkMode,
		EmailNotifications: req.EmailNotifications,
		AutoLogout:         req.AutoLogout,
		UpdatedAt:          s.now().UTC(),
	}
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to save settings")
	}
	return settings, nil
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
)

type notificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	List(ctx context.Context, limit int) ([]models.Notification, error)
}

// NotificationService appends and serves the append-only notification stream.
type NotificationService struct {
	repo   notificationStore
	logger *zap.Logger
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(repo notificationStore, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{repo: repo, logger: logger}
}

// Append persists a notification row and reports the failure to the caller.
func (s *NotificationService) Append(ctx context.Context, message string) error {
	return s.repo.Create(ctx, &models.Notification{Message: message})
}

// Notify appends a notification. Failures are logged, never surfaced: a
// notification must not fail the mutation that triggered it.
func (s *NotificationService) Notify(ctx context.Context, message string) {
	if s == nil || s.repo == nil {
		return
	}
	if err := s.Append(ctx, message); err != nil {
		s.logger.Warn("notification append failed", zap.String("message", message), zap.Error(err))
	}
}

// List returns the newest notifications first.
func (s *NotificationService) List(ctx context.Context, limit int) ([]models.Notification, error) {
	notifications, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to fetch notifications")
	}
	return notifications, nil
}

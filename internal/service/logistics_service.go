package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
)

type logisticsRepository interface {
	CreateWithTracking(ctx context.Context, req *models.ModuleRequest, log *models.TrackingLog) error
	List(ctx context.Context) ([]models.ModuleRequest, error)
	ListTracking(ctx context.Context) ([]models.TrackingLog, error)
	UpdateTrackingStatus(ctx context.Context, logID, status string, ts time.Time) (int64, error)
}

type notifier interface {
	Notify(ctx context.Context, message string)
}

type chartInvalidator interface {
	Invalidate(ctx context.Context, pattern string) error
}

// LogisticsService maintains the module request and tracking log pairing.
// Every valid submission produces exactly one tracking log whose LogID equals
// the new request's id and whose status starts at Pending. Updating a
// tracking log afterwards never touches the request's own status; the two are
// independently mutable copies of a conceptually shared state.
type LogisticsService struct {
	repo       logisticsRepository
	notifier   notifier
	chartCache chartInvalidator
	validator  *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
}

// NewLogisticsService constructs a LogisticsService.
func NewLogisticsService(repo logisticsRepository, n notifier, chartCache chartInvalidator, validate *validator.Validate, logger *zap.Logger) *LogisticsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogisticsService{
		repo:       repo,
		notifier:   n,
		chartCache: chartCache,
		validator:  validate,
		logger:     logger,
		now:        time.Now,
	}
}

// SubmitRequest validates and stores a module request together with its
// tracking log.
func (s *LogisticsService) SubmitRequest(ctx context.Context, req dto.SubmitModuleRequest) (*models.ModuleRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}
	requestDate, err := parseDate(req.RequestDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request date")
	}

	now := s.now().UTC()
	request := &models.ModuleRequest{
		Module:      req.Module,
		RequestedBy: req.RequestedBy,
		Description: req.Description,
		Recipient:   req.Recipient,
		RequestDate: requestDate,
		Quantity:    req.Quantity,
		Status:      models.StatusPending,
		CreatedAt:   now,
	}
	log := &models.TrackingLog{
		Module:    req.Module,
		Status:    models.StatusPending,
		UpdatedBy: req.RequestedBy,
		UpdatedAt: now,
	}

	if err := s.repo.CreateWithTracking(ctx, request, log); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to submit request")
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, fmt.Sprintf("New logistics request: %s by %s", req.Module, req.RequestedBy))
	}
	s.invalidateCharts(ctx)

	return request, nil
}

// ListRequests returns all module requests.
func (s *LogisticsService) ListRequests(ctx context.Context) ([]models.ModuleRequest, error) {
	requests, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to fetch requests")
	}
	return requests, nil
}

// ListTracking returns all tracking logs.
func (s *LogisticsService) ListTracking(ctx context.Context) ([]models.TrackingLog, error) {
	logs, err := s.repo.ListTracking(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to fetch tracking logs")
	}
	return logs, nil
}

// UpdateTrackingStatus sets a tracking log's status. The originating module
// request keeps its own status untouched.
func (s *LogisticsService) UpdateTrackingStatus(ctx context.Context, req dto.UpdateTrackingRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "log ID and status are required")
	}

	affected, err := s.repo.UpdateTrackingStatus(ctx, req.LogID, req.Status, s.now().UTC())
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to update tracking status")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "tracking log not found")
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, fmt.Sprintf("Tracking status updated: %s to %s", req.LogID, req.Status))
	}
	return nil
}

func (s *LogisticsService) invalidateCharts(ctx context.Context) {
	if s.chartCache == nil {
		return
	}
	if err := s.chartCache.Invalidate(ctx, "charts:*"); err != nil {
		s.logger.Warn("chart cache invalidation failed", zap.Error(err))
	}
}

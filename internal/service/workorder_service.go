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

type workOrderRepository interface {
	Create(ctx context.Context, order *models.WorkOrder) (int64, error)
	List(ctx context.Context) ([]models.WorkOrder, error)
	UpdateStatus(ctx context.Context, id, status string, ts time.Time) (int64, error)
}

// WorkOrderService manages work order submission and status transitions.
type WorkOrderService struct {
	repo      workOrderRepository
	notifier  notifier
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewWorkOrderService constructs a WorkOrderService.
func NewWorkOrderService(repo workOrderRepository, n notifier, validate *validator.Validate, logger *zap.Logger) *WorkOrderService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkOrderService{repo: repo, notifier: n, validator: validate, logger: logger, now: time.Now}
}

// Submit stores a new work order. Status defaults to Pending and both dates
// are normalised to UTC timestamps. A write the store does not acknowledge is
// a persistence failure.
func (s *WorkOrderService) Submit(ctx context.Context, req dto.SubmitWorkOrderRequest) (*models.WorkOrder, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid work order payload")
	}
	createdDate, err := parseDate(req.CreatedDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid created date")
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid due date")
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}

	order := &models.WorkOrder{
		Module:      req.Module,
		CreatedBy:   req.CreatedBy,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		CreatedDate: createdDate,
		DueDate:     dueDate,
		Priority:    req.Priority,
		Quantity:    req.Quantity,
		Status:      status,
	}

	affected, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to submit work order")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrPersistence, "work order insert not acknowledged")
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, fmt.Sprintf("New work order submitted: %s", req.Module))
	}
	return order, nil
}

// List returns all work orders.
func (s *WorkOrderService) List(ctx context.Context) ([]models.WorkOrder, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to fetch work orders")
	}
	return orders, nil
}

// UpdateStatus changes the status of one work order.
func (s *WorkOrderService) UpdateStatus(ctx context.Context, id string, req dto.UpdateWorkOrderStatusRequest) error {
	if id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "work order ID is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "status is required")
	}

	affected, err := s.repo.UpdateStatus(ctx, id, req.Status, s.now().UTC())
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to update work order status")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "work order not found")
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, fmt.Sprintf("Work order status updated: %s to %s", id, req.Status))
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
)

type productionRepository interface {
	Create(ctx context.Context, record *models.ProductionRecord) error
	List(ctx context.Context) ([]models.ProductionRecord, error)
	Update(ctx context.Context, record *models.ProductionRecord) (int64, error)
	Delete(ctx context.Context, id string) error
}

// ProductionService records production output against work orders and keeps
// the derived fields consistent with the source fields on every write.
type ProductionService struct {
	repo      productionRepository
	notifier  notifier
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProductionService constructs a ProductionService.
func NewProductionService(repo productionRepository, n notifier, validate *validator.Validate, logger *zap.Logger) *ProductionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductionService{repo: repo, notifier: n, validator: validate, logger: logger}
}

// Submit validates, derives and stores a new production record.
func (s *ProductionService) Submit(ctx context.Context, req dto.SubmitProductionRequest) (*models.ProductionRecord, error) {
	record, err := s.buildRecord(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to add production data")
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, fmt.Sprintf("New production data added: %s", req.WorkOrderID))
	}
	return record, nil
}

// List returns all production records.
func (s *ProductionService) List(ctx context.Context) ([]models.ProductionRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to fetch production data")
	}
	return records, nil
}

// Update replaces an existing record's fields, re-running the derivation.
func (s *ProductionService) Update(ctx context.Context, req dto.UpdateProductionRequest) (*models.ProductionRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}
	record, err := s.buildRecord(req.SubmitProductionRequest)
	if err != nil {
		return nil, err
	}
	record.ID = req.ID

	affected, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to update production data")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "production record not found")
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, fmt.Sprintf("Production data updated: %s", req.WorkOrderID))
	}
	return record, nil
}

// Delete removes a record by id. Deleting an id that no longer exists is a
// no-op, not an error.
func (s *ProductionService) Delete(ctx context.Context, req dto.DeleteProductionRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "ID is required")
	}

	if err := s.repo.Delete(ctx, req.ID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to delete production data")
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, fmt.Sprintf("Production data deleted: %s", req.ID))
	}
	return nil
}

func (s *ProductionService) buildRecord(req dto.SubmitProductionRequest) (*models.ProductionRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all fields are required")
	}
	dateRequested, err := parseDate(req.DateRequested)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid requested date")
	}
	dateFulfilled, err := parseDate(req.DateFulfilled)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid fulfilled date")
	}

	fulfilled, onTime := deriveProductionOutcome(req.ProducedQty, dateRequested, dateFulfilled)
	return &models.ProductionRecord{
		WorkOrderID:    req.WorkOrderID,
		DateRequested:  dateRequested,
		FulfilledBy:    req.FulfilledBy,
		DateFulfilled:  dateFulfilled,
		ProducedQty:    req.ProducedQty,
		OrderFulfilled: fulfilled,
		OrderOnTime:    onTime,
	}, nil
}

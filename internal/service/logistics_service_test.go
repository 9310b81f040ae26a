package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
)

type mockNotifier struct {
	messages []string
}

func (m *mockNotifier) Notify(ctx context.Context, message string) {
	m.messages = append(m.messages, message)
}

type mockLogisticsRepo struct {
	requests      []models.ModuleRequest
	logs          []models.TrackingLog
	createErr     error
	trackAffected int64
	trackErr      error

	recipientCounts []models.GroupCount
	moduleCounts    []models.GroupCount
	statusCounts    []models.GroupCount
	countErr        error
}

func (m *mockLogisticsRepo) CreateWithTracking(ctx context.Context, req *models.ModuleRequest, log *models.TrackingLog) error {
	if m.createErr != nil {
		return m.createErr
	}
	if req.ID == "" {
		req.ID = "generated"
	}
	log.LogID = req.ID
	m.requests = append(m.requests, *req)
	m.logs = append(m.logs, *log)
	return nil
}

func (m *mockLogisticsRepo) List(ctx context.Context) ([]models.ModuleRequest, error) {
	return m.requests, nil
}

func (m *mockLogisticsRepo) ListTracking(ctx context.Context) ([]models.TrackingLog, error) {
	return m.logs, nil
}

func (m *mockLogisticsRepo) UpdateTrackingStatus(ctx context.Context, logID, status string, ts time.Time) (int64, error) {
	if m.trackErr != nil {
		return 0, m.trackErr
	}
	return m.trackAffected, nil
}

func (m *mockLogisticsRepo) CountByRecipient(ctx context.Context) ([]models.GroupCount, error) {
	return m.recipientCounts, m.countErr
}

func (m *mockLogisticsRepo) CountByModule(ctx context.Context) ([]models.GroupCount, error) {
	return m.moduleCounts, m.countErr
}

func (m *mockLogisticsRepo) CountByStatus(ctx context.Context) ([]models.GroupCount, error) {
	return m.statusCounts, m.countErr
}

func validSubmitRequest() dto.SubmitModuleRequest {
	return dto.SubmitModuleRequest{
		Module:      "AX-400",
		RequestedBy: "dana@factory.test",
		Recipient:   "Assembly Line 2",
		RequestDate: "2025-10-05",
		Quantity:    25,
	}
}

func TestLogisticsSubmitCreatesPairedTrackingLog(t *testing.T) {
	repo := &mockLogisticsRepo{}
	notify := &mockNotifier{}
	svc := NewLogisticsService(repo, notify, nil, validator.New(), zap.NewNop())

	request, err := svc.SubmitRequest(context.Background(), validSubmitRequest())
	require.NoError(t, err)

	require.Len(t, repo.requests, 1)
	require.Len(t, repo.logs, 1)
	assert.Equal(t, request.ID, repo.logs[0].LogID)
	assert.Equal(t, models.StatusPending, repo.requests[0].Status)
	assert.Equal(t, models.StatusPending, repo.logs[0].Status)
	assert.Equal(t, "dana@factory.test", repo.logs[0].UpdatedBy)
	assert.Equal(t, []string{"New logistics request: AX-400 by dana@factory.test"}, notify.messages)
}

func TestLogisticsSubmitRejectsMissingFields(t *testing.T) {
	repo := &mockLogisticsRepo{}
	svc := NewLogisticsService(repo, nil, nil, validator.New(), zap.NewNop())

	req := validSubmitRequest()
	req.Recipient = ""
	_, err := svc.SubmitRequest(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Empty(t, repo.requests)
}

func TestLogisticsSubmitRejectsNonPositiveQuantity(t *testing.T) {
	svc := NewLogisticsService(&mockLogisticsRepo{}, nil, nil, validator.New(), zap.NewNop())

	req := validSubmitRequest()
	req.Quantity = 0
	_, err := svc.SubmitRequest(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLogisticsSubmitDescriptionOptional(t *testing.T) {
	repo := &mockLogisticsRepo{}
	svc := NewLogisticsService(repo, nil, nil, validator.New(), zap.NewNop())

	req := validSubmitRequest()
	req.Description = ""
	_, err := svc.SubmitRequest(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, repo.requests, 1)
}

func TestLogisticsSubmitPersistenceFailure(t *testing.T) {
	repo := &mockLogisticsRepo{createErr: errors.New("connection reset")}
	notify := &mockNotifier{}
	svc := NewLogisticsService(repo, notify, nil, validator.New(), zap.NewNop())

	_, err := svc.SubmitRequest(context.Background(), validSubmitRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPersistence.Code, appErrors.FromError(err).Code)
	assert.Empty(t, notify.messages)
}

func TestUpdateTrackingStatusLeavesRequestUntouched(t *testing.T) {
	repo := &mockLogisticsRepo{trackAffected: 1}
	notify := &mockNotifier{}
	svc := NewLogisticsService(repo, notify, nil, validator.New(), zap.NewNop())

	request, err := svc.SubmitRequest(context.Background(), validSubmitRequest())
	require.NoError(t, err)

	err = svc.UpdateTrackingStatus(context.Background(), dto.UpdateTrackingRequest{
		LogID:  request.ID,
		Status: models.StatusInTransit,
	})
	require.NoError(t, err)

	// The stored request keeps its original status.
	assert.Equal(t, models.StatusPending, repo.requests[0].Status)
	assert.Contains(t, notify.messages, "Tracking status updated: "+request.ID+" to In Transit")
}

func TestUpdateTrackingStatusUnknownLog(t *testing.T) {
	repo := &mockLogisticsRepo{trackAffected: 0}
	svc := NewLogisticsService(repo, nil, nil, validator.New(), zap.NewNop())

	err := svc.UpdateTrackingStatus(context.Background(), dto.UpdateTrackingRequest{
		LogID:  "missing",
		Status: models.StatusCompleted,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestUpdateTrackingStatusRequiresFields(t *testing.T) {
	svc := NewLogisticsService(&mockLogisticsRepo{}, nil, nil, validator.New(), zap.NewNop())

	err := svc.UpdateTrackingStatus(context.Background(), dto.UpdateTrackingRequest{LogID: "x"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

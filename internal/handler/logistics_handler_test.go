package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
)

type fakeLogisticsSrv struct {
	submitted []dto.SubmitModuleRequest
	submitErr error
	requests  []models.ModuleRequest
	logs      []models.TrackingLog
	updated   []dto.UpdateTrackingRequest
	updateErr error
}

func (f *fakeLogisticsSrv) SubmitRequest(ctx context.Context, req dto.SubmitModuleRequest) (*models.ModuleRequest, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.submitted = append(f.submitted, req)
	return &models.ModuleRequest{ID: "r1", Module: req.Module, Status: models.StatusPending}, nil
}

func (f *fakeLogisticsSrv) ListRequests(ctx context.Context) ([]models.ModuleRequest, error) {
	return f.requests, nil
}

func (f *fakeLogisticsSrv) ListTracking(ctx context.Context) ([]models.TrackingLog, error) {
	return f.logs, nil
}

func (f *fakeLogisticsSrv) UpdateTrackingStatus(ctx context.Context, req dto.UpdateTrackingRequest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, req)
	return nil
}

type responseEnvelope struct {
	Data map[string]interface{} `json:"data"`
	Meta map[string]interface{} `json:"meta"`
}

func TestLogisticsHandlerSubmit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeLogisticsSrv{}
	handler := NewLogisticsHandler(srv)

	body := `{"module":"AX-400","requestedBy":"dana","recipient":"Line 2","requestDate":"2025-10-05","quantity":25}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/logistics", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Submit(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, srv.submitted, 1)
	var envelope responseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	assert.Equal(t, "Logistics request submitted successfully", envelope.Data["message"])
}

func TestLogisticsHandlerSubmitBadJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewLogisticsHandler(&fakeLogisticsSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/logistics", strings.NewReader("{"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Submit(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogisticsHandlerUpdateTrackingNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewLogisticsHandler(&fakeLogisticsSrv{
		updateErr: appErrors.Clone(appErrors.ErrNotFound, "tracking log not found"),
	})

	body := `{"logId":"missing","status":"Completed"}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPut, "/tracking", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.UpdateTracking(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogisticsHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewLogisticsHandler(&fakeLogisticsSrv{
		requests: []models.ModuleRequest{{ID: "r1", Module: "AX-400"}},
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/logistics", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "AX-400")
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
	"github.com/analog-mfg/factory-ops-api/pkg/response"
)

type logisticsService interface {
	SubmitRequest(ctx context.Context, req dto.SubmitModuleRequest) (*models.ModuleRequest, error)
	ListRequests(ctx context.Context) ([]models.ModuleRequest, error)
	ListTracking(ctx context.Context) ([]models.TrackingLog, error)
	UpdateTrackingStatus(ctx context.Context, req dto.UpdateTrackingRequest) error
}

// LogisticsHandler wires the module request lifecycle to HTTP endpoints.
type LogisticsHandler struct {
	service logisticsService
}

// NewLogisticsHandler creates a new handler.
func NewLogisticsHandler(svc logisticsService) *LogisticsHandler {
	return &LogisticsHandler{service: svc}
}

// Submit godoc
// @Summary Submit a logistics module request
// @Tags Logistics
// @Accept json
// @Produce json
// @Param payload body dto.SubmitModuleRequest true "Module request payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /logistics [post]
func (h *LogisticsHandler) Submit(c *gin.Context) {
	var req dto.SubmitModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid logistics payload"))
		return
	}

	if _, err := h.service.SubmitRequest(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Logistics request submitted successfully")
}

// List godoc
// @Summary List all logistics module requests
// @Tags Logistics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /logistics [get]
func (h *LogisticsHandler) List(c *gin.Context) {
	requests, err := h.service.ListRequests(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

// ListTracking godoc
// @Summary List all tracking logs
// @Tags Tracking
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tracking [get]
func (h *LogisticsHandler) ListTracking(c *gin.Context) {
	logs, err := h.service.ListTracking(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, logs)
}

// UpdateTracking godoc
// @Summary Update the status of a tracking log
// @Tags Tracking
// @Accept json
// @Produce json
// @Param payload body dto.UpdateTrackingRequest true "Tracking update payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /tracking [put]
func (h *LogisticsHandler) UpdateTracking(c *gin.Context) {
	var req dto.UpdateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid tracking payload"))
		return
	}

	if err := h.service.UpdateTrackingStatus(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Tracking status updated successfully")
}

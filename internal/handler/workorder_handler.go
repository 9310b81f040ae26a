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

type workOrderService interface {
	Submit(ctx context.Context, req dto.SubmitWorkOrderRequest) (*models.WorkOrder, error)
	List(ctx context.Context) ([]models.WorkOrder, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateWorkOrderStatusRequest) error
}

// WorkOrderHandler wires work order endpoints.
type WorkOrderHandler struct {
	service workOrderService
}

// NewWorkOrderHandler creates a new handler.
func NewWorkOrderHandler(svc workOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{service: svc}
}

// Submit godoc
// @Summary Create a work order
// @Tags WorkOrders
// @Accept json
// @Produce json
// @Param payload body dto.SubmitWorkOrderRequest true "Work order payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /workorder [post]
func (h *WorkOrderHandler) Submit(c *gin.Context) {
	var req dto.SubmitWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid work order payload"))
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Work order submitted successfully")
}

// List godoc
// @Summary List all work orders
// @Tags WorkOrders
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /workorder [get]
func (h *WorkOrderHandler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, orders)
}

// UpdateStatus godoc
// @Summary Update the status of a work order
// @Tags WorkOrders
// @Accept json
// @Produce json
// @Param id path string true "Work order ID"
// @Param payload body dto.UpdateWorkOrderStatusRequest true "Status payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /workorder/{id} [put]
func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateWorkOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Work order status updated successfully")
}

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

type productionService interface {
	Submit(ctx context.Context, req dto.SubmitProductionRequest) (*models.ProductionRecord, error)
	List(ctx context.Context) ([]models.ProductionRecord, error)
	Update(ctx context.Context, req dto.UpdateProductionRequest) (*models.ProductionRecord, error)
	Delete(ctx context.Context, req dto.DeleteProductionRequest) error
}

// ProductionHandler wires production record endpoints.
type ProductionHandler struct {
	service productionService
}

// NewProductionHandler creates a new handler.
func NewProductionHandler(svc productionService) *ProductionHandler {
	return &ProductionHandler{service: svc}
}

// Submit godoc
// @Summary Record production output for a work order
// @Tags Production
// @Accept json
// @Produce json
// @Param payload body dto.SubmitProductionRequest true "Production payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /production [post]
func (h *ProductionHandler) Submit(c *gin.Context) {
	var req dto.SubmitProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid production payload"))
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Production data submitted successfully")
}

// List godoc
// @Summary List all production records
// @Tags Production
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /production [get]
func (h *ProductionHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Update godoc
// @Summary Update an existing production record
// @Tags Production
// @Accept json
// @Produce json
// @Param payload body dto.UpdateProductionRequest true "Production update payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /production [put]
func (h *ProductionHandler) Update(c *gin.Context) {
	var req dto.UpdateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid production payload"))
		return
	}

	if _, err := h.service.Update(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Production data updated successfully")
}

// Delete godoc
// @Summary Delete a production record
// @Tags Production
// @Accept json
// @Produce json
// @Param payload body dto.DeleteProductionRequest true "Production delete payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /production [delete]
func (h *ProductionHandler) Delete(c *gin.Context) {
	var req dto.DeleteProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid production payload"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Production data deleted successfully")
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/middleware"
	"github.com/analog-mfg/factory-ops-api/pkg/response"
)

type dashboardService interface {
	LogisticsSummary(ctx context.Context) ([]dto.ChartSlice, bool, error)
	ModuleChart(ctx context.Context) ([]dto.ChartSlice, bool, error)
	FulfillmentRate(ctx context.Context) ([]dto.ChartSlice, bool, error)
}

// DashboardHandler wires chart aggregation endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// LogisticsSummary godoc
// @Summary Module request counts per recipient
// @Tags Charts
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /logistics-summary [get]
func (h *DashboardHandler) LogisticsSummary(c *gin.Context) {
	h.serve(c, h.service.LogisticsSummary)
}

// ModuleChart godoc
// @Summary Module request counts per module, descending
// @Tags Charts
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /module-chart [get]
func (h *DashboardHandler) ModuleChart(c *gin.Context) {
	h.serve(c, h.service.ModuleChart)
}

// FulfillmentRate godoc
// @Summary Pending versus fulfilled request split
// @Tags Charts
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /fulfillment-rate [get]
func (h *DashboardHandler) FulfillmentRate(c *gin.Context) {
	h.serve(c, h.service.FulfillmentRate)
}

func (h *DashboardHandler) serve(c *gin.Context, fetch func(ctx context.Context) ([]dto.ChartSlice, bool, error)) {
	start := time.Now()
	slices, cacheHit, err := fetch(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, slices, meta)
}

package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/service"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
	"github.com/analog-mfg/factory-ops-api/pkg/response"
)

type reportService interface {
	Build(ctx context.Context, req dto.ReportRequest) (*service.RenderedReport, error)
}

// ReportHandler streams generated report documents.
type ReportHandler struct {
	service reportService
}

// NewReportHandler creates a new handler.
func NewReportHandler(svc reportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// Download godoc
// @Summary Generate a report from dataset snapshots
// @Description Renders production, logistics and tracking snapshots as a PDF or CSV download
// @Tags Reports
// @Accept json
// @Produce application/pdf
// @Param payload body dto.ReportRequest true "Report payload"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /reports [post]
func (h *ReportHandler) Download(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid report payload"))
		return
	}

	rendered, err := h.service.Build(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", rendered.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, rendered.Filename))
	c.Status(http.StatusOK)
	if err := rendered.Render(c.Writer); err != nil {
		// Headers are already on the wire; all we can do is abort the stream.
		c.Abort()
	}
}

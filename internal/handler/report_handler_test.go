package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/service"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
)

type fakeReportSrv struct {
	err error
}

func (f *fakeReportSrv) Build(ctx context.Context, req dto.ReportRequest) (*service.RenderedReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &service.RenderedReport{
		Filename:    "factory-report-test.pdf",
		ContentType: "application/pdf",
		Render: func(w io.Writer) error {
			_, err := io.WriteString(w, "%PDF-1.4")
			return err
		},
	}, nil
}

func TestReportHandlerStreamsDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(&fakeReportSrv{})

	body := `{"productionData":[],"logisticsData":[],"trackingData":[]}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Download(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "factory-report-test.pdf")
	assert.Equal(t, "%PDF-1.4", rec.Body.String())
}

func TestReportHandlerMissingDataset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(&fakeReportSrv{
		err: appErrors.Clone(appErrors.ErrValidation, "All data fields are required"),
	})

	body := `{"productionData":[]}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Download(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All data fields are required")
}

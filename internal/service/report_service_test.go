package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
	"github.com/analog-mfg/factory-ops-api/pkg/export"
)

type stubRenderer struct {
	rendered *export.Report
	err      error
	output   string
}

func (s *stubRenderer) Render(w io.Writer, report export.Report) error {
	if s.err != nil {
		return s.err
	}
	s.rendered = &report
	_, err := io.WriteString(w, s.output)
	return err
}

func emptyReportRequest() dto.ReportRequest {
	return dto.ReportRequest{
		ProductionData: []models.ProductionRecord{},
		LogisticsData:  []models.ModuleRequest{},
		TrackingData:   []models.TrackingLog{},
	}
}

func TestReportBuildRejectsMissingDatasets(t *testing.T) {
	svc := NewReportService(&stubRenderer{}, &stubRenderer{}, zap.NewNop())

	req := emptyReportRequest()
	req.TrackingData = nil
	_, err := svc.Build(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "All data fields are required", appErr.Message)
}

func TestReportBuildAcceptsEmptyDatasets(t *testing.T) {
	pdf := &stubRenderer{output: "%PDF"}
	svc := NewReportService(pdf, &stubRenderer{}, zap.NewNop())

	rendered, err := svc.Build(context.Background(), emptyReportRequest())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rendered.Render(&buf))
	assert.Equal(t, "%PDF", buf.String())
	require.NotNil(t, pdf.rendered)
	require.Len(t, pdf.rendered.Sections, 3)
	assert.Equal(t, "Production Data", pdf.rendered.Sections[0].Title)
	assert.Equal(t, "Logistics Data", pdf.rendered.Sections[1].Title)
	assert.Equal(t, "Tracking Data", pdf.rendered.Sections[2].Title)
}

func TestReportBuildDefaultsToPDF(t *testing.T) {
	svc := NewReportService(&stubRenderer{}, &stubRenderer{}, zap.NewNop())

	rendered, err := svc.Build(context.Background(), emptyReportRequest())
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", rendered.ContentType)
	assert.True(t, strings.HasSuffix(rendered.Filename, ".pdf"))
}

func TestReportBuildCSVFormat(t *testing.T) {
	csv := &stubRenderer{output: "a,b\n"}
	svc := NewReportService(&stubRenderer{}, csv, zap.NewNop())

	req := emptyReportRequest()
	req.Format = "csv"
	rendered, err := svc.Build(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", rendered.ContentType)
	assert.True(t, strings.HasSuffix(rendered.Filename, ".csv"))

	var buf bytes.Buffer
	require.NoError(t, rendered.Render(&buf))
	assert.Equal(t, "a,b\n", buf.String())
}

func TestReportBuildUnknownFormat(t *testing.T) {
	svc := NewReportService(&stubRenderer{}, &stubRenderer{}, zap.NewNop())

	req := emptyReportRequest()
	req.Format = "xlsx"
	_, err := svc.Build(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestReportRenderFailureIsUpstream(t *testing.T) {
	pdf := &stubRenderer{err: errors.New("font missing")}
	svc := NewReportService(pdf, &stubRenderer{}, zap.NewNop())

	rendered, err := svc.Build(context.Background(), emptyReportRequest())
	require.NoError(t, err)

	err = rendered.Render(io.Discard)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}

func TestReportDatasetRowsCarrySourceValues(t *testing.T) {
	pdf := &stubRenderer{}
	svc := NewReportService(pdf, &stubRenderer{}, zap.NewNop())

	req := emptyReportRequest()
	req.ProductionData = []models.ProductionRecord{{
		WorkOrderID:    "WO-1",
		FulfilledBy:    "line-a",
		ProducedQty:    120,
		OrderFulfilled: true,
		OrderOnTime:    false,
	}}

	rendered, err := svc.Build(context.Background(), req)
	require.NoError(t, err)
	require.NoError(t, rendered.Render(io.Discard))

	rows := pdf.rendered.Sections[0].Data.Rows
	require.Len(t, rows, 1)
	assert.Equal(t, "WO-1", rows[0]["Work Order"])
	assert.Equal(t, "120", rows[0]["Produced Qty"])
	assert.Equal(t, "Yes", rows[0]["Fulfilled"])
	assert.Equal(t, "No", rows[0]["On Time"])
}

package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/analog-mfg/factory-ops-api/internal/dto"
	"github.com/analog-mfg/factory-ops-api/internal/models"
	appErrors "github.com/analog-mfg/factory-ops-api/pkg/errors"
	"github.com/analog-mfg/factory-ops-api/pkg/export"
)

// Renderer writes a report to a stream in a specific document format.
type Renderer interface {
	Render(w io.Writer, report export.Report) error
}

// RenderedReport is the output of a report build: the document bytes plus the
// metadata a transport needs to serve them as a download.
type RenderedReport struct {
	Filename    string
	ContentType string
	Render      func(w io.Writer) error
}

// ReportService turns client-supplied dataset snapshots into downloadable
// documents. The snapshots come from the request body as-is; the service does
// not re-query the stores.
type ReportService struct {
	pdf    Renderer
	csv    Renderer
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService constructs a ReportService.
func NewReportService(pdf, csv Renderer, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{pdf: pdf, csv: csv, logger: logger, now: time.Now}
}

// Build validates the snapshot payload and prepares a rendered report. A nil
// dataset means the field was absent from the payload and is rejected; an
// empty slice is a legitimate empty table.
func (s *ReportService) Build(ctx context.Context, req dto.ReportRequest) (*RenderedReport, error) {
	if req.ProductionData == nil || req.LogisticsData == nil || req.TrackingData == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "All data fields are required")
	}

	report := export.Report{
		Title: "Factory Operations Report",
		Sections: []export.Section{
			{Title: "Production Data", Data: productionDataset(req.ProductionData)},
			{Title: "Logistics Data", Data: logisticsDataset(req.LogisticsData)},
			{Title: "Tracking Data", Data: trackingDataset(req.TrackingData)},
		},
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	var renderer Renderer
	var ext, contentType string
	switch format {
	case "", "pdf":
		renderer = s.pdf
		ext = "pdf"
		contentType = "application/pdf"
	case "csv":
		renderer = s.csv
		ext = "csv"
		contentType = "text/csv"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported report format: %s", req.Format))
	}

	stamp := s.now().UTC().Format("20060102-150405")
	return &RenderedReport{
		Filename:    fmt.Sprintf("factory-report-%s.%s", stamp, ext),
		ContentType: contentType,
		Render: func(w io.Writer) error {
			if err := renderer.Render(w, report); err != nil {
				s.logger.Error("report render failed", zap.String("format", ext), zap.Error(err))
				return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to generate report")
			}
			return nil
		},
	}, nil
}

func productionDataset(records []models.ProductionRecord) export.Dataset {
	headers := []string{"Work Order", "Date Requested", "Fulfilled By", "Date Fulfilled", "Produced Qty", "Fulfilled", "On Time"}
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, map[string]string{
			"Work Order":     r.WorkOrderID,
			"Date Requested": formatReportDate(r.DateRequested),
			"Fulfilled By":   r.FulfilledBy,
			"Date Fulfilled": formatReportDate(r.DateFulfilled),
			"Produced Qty":   strconv.Itoa(r.ProducedQty),
			"Fulfilled":      yesNo(r.OrderFulfilled),
			"On Time":        yesNo(r.OrderOnTime),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func logisticsDataset(requests []models.ModuleRequest) export.Dataset {
	headers := []string{"Module", "Requested By", "Recipient", "Request Date", "Quantity", "Status"}
	rows := make([]map[string]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, map[string]string{
			"Module":       r.Module,
			"Requested By": r.RequestedBy,
			"Recipient":    r.Recipient,
			"Request Date": formatReportDate(r.RequestDate),
			"Quantity":     strconv.Itoa(r.Quantity),
			"Status":       r.Status,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func trackingDataset(logs []models.TrackingLog) export.Dataset {
	headers := []string{"Log ID", "Module", "Status", "Updated By", "Updated At"}
	rows := make([]map[string]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, map[string]string{
			"Log ID":     l.LogID,
			"Module":     l.Module,
			"Status":     l.Status,
			"Updated By": l.UpdatedBy,
			"Updated At": formatReportDate(l.UpdatedAt),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func formatReportDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

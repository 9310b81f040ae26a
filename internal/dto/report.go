package dto

import "github.com/analog-mfg/factory-ops-api/internal/models"

// ReportRequest carries client-side snapshots of the datasets to render.
// All three snapshots must be present; empty slices are allowed.
type ReportRequest struct {
	ProductionData []models.ProductionRecord `json:"productionData"`
	LogisticsData  []models.ModuleRequest    `json:"logisticsData"`
	TrackingData   []models.TrackingLog      `json:"trackingData"`
	Format         string                    `json:"format"`
}

package dto

// SubmitModuleRequest is the payload for creating a logistics request.
// Dates arrive as strings (YYYY-MM-DD or RFC 3339) and are parsed by the
// lifecycle service.
type SubmitModuleRequest struct {
	Module      string `json:"module" validate:"required"`
	RequestedBy string `json:"requestedBy" validate:"required"`
	Description string `json:"description"`
	Recipient   string `json:"recipient" validate:"required"`
	RequestDate string `json:"requestDate" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateTrackingRequest updates the status of an existing tracking log.
type UpdateTrackingRequest struct {
	LogID  string `json:"logId" validate:"required"`
	Status string `json:"status" validate:"required"`
}

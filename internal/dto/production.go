package dto

// SubmitProductionRequest is the payload for recording production output.
type SubmitProductionRequest struct {
	WorkOrderID   string `json:"workOrderID" validate:"required"`
	DateRequested string `json:"dateRequested" validate:"required"`
	FulfilledBy   string `json:"fulfilledBy" validate:"required"`
	DateFulfilled string `json:"dateFulfilled" validate:"required"`
	ProducedQty   int    `json:"producedQty" validate:"required,gt=0"`
}

// UpdateProductionRequest replaces an existing production record's fields.
type UpdateProductionRequest struct {
	ID string `json:"id" validate:"required"`
	SubmitProductionRequest
}

// DeleteProductionRequest identifies the record to remove.
type DeleteProductionRequest struct {
	ID string `json:"id" validate:"required"`
}

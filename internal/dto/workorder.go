package dto

// SubmitWorkOrderRequest is the payload for creating a work order.
// Status is optional and defaults to Pending.
type SubmitWorkOrderRequest struct {
	Module      string `json:"module" validate:"required"`
	CreatedBy   string `json:"createdBy" validate:"required"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	CreatedDate string `json:"createdDate" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`
	Priority    string `json:"priority"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Status      string `json:"status"`
}

// UpdateWorkOrderStatusRequest changes the status of an existing work order.
type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

package models

import "time"

// Module request statuses. Tracking logs reuse the same vocabulary.
const (
	StatusPending   = "Pending"
	StatusInTransit = "In Transit"
	StatusCompleted = "Completed"
)

// ModuleRequest is a logistics request for a quantity of a manufacturing module.
type ModuleRequest struct {
	ID          string    `db:"id" json:"id"`
	Module      string    `db:"module" json:"module"`
	RequestedBy string    `db:"requested_by" json:"requestedBy"`
	Description string    `db:"description" json:"description"`
	Recipient   string    `db:"recipient" json:"recipient"`
	RequestDate time.Time `db:"request_date" json:"requestDate"`
	Quantity    int       `db:"quantity" json:"quantity"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// TrackingLog is the status-history entry paired with a module request.
// LogID equals the originating request's ID. The link is maintained by the
// lifecycle service, not by a store-level foreign key, and the status here is
// mutated independently of ModuleRequest.Status.
type TrackingLog struct {
	LogID     string    `db:"log_id" json:"logId"`
	Module    string    `db:"module" json:"module"`
	Status    string    `db:"status" json:"status"`
	UpdatedBy string    `db:"updated_by" json:"updatedBy"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

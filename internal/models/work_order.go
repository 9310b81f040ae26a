package models

import "time"

// Work order priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// WorkOrder is an internal directive to produce a quantity of a phone model
// by a due date.
type WorkOrder struct {
	ID          string     `db:"id" json:"id"`
	Module      string     `db:"module" json:"module"`
	CreatedBy   string     `db:"created_by" json:"createdBy"`
	Description string     `db:"description" json:"description"`
	AssignedTo  string     `db:"assigned_to" json:"assignedTo"`
	CreatedDate time.Time  `db:"created_date" json:"createdDate"`
	DueDate     time.Time  `db:"due_date" json:"dueDate"`
	Priority    string     `db:"priority" json:"priority"`
	Quantity    int        `db:"quantity" json:"quantity"`
	Status      string     `db:"status" json:"status"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
}

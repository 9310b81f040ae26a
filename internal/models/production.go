package models

import "time"

// ProductionRecord reports actual units produced against a work order.
// OrderFulfilled and OrderOnTime are derived; callers never supply them.
type ProductionRecord struct {
	ID             string    `db:"id" json:"id"`
	WorkOrderID    string    `db:"work_order_id" json:"workOrderID"`
	DateRequested  time.Time `db:"date_requested" json:"dateRequested"`
	FulfilledBy    string    `db:"fulfilled_by" json:"fulfilledBy"`
	DateFulfilled  time.Time `db:"date_fulfilled" json:"dateFulfilled"`
	ProducedQty    int       `db:"produced_qty" json:"producedQty"`
	OrderFulfilled bool      `db:"order_fulfilled" json:"orderFulfilled"`
	OrderOnTime    bool      `db:"order_on_time" json:"orderOnTime"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

package service

import "time"

// fulfillmentThreshold is the fixed produced-quantity cutoff above which an
// order counts as fulfilled. It is intentionally not configurable.
const fulfillmentThreshold = 100

// deriveProductionOutcome computes the derived fields of a production record
// from its source fields. It must be applied on every create and update so
// the stored values never go stale.
//
// On-time deliberately compares the fulfillment date against the request
// date, not the work order's due date.
func deriveProductionOutcome(producedQty int, dateRequested, dateFulfilled time.Time) (fulfilled, onTime bool) {
	fulfilled = producedQty >= fulfillmentThreshold
	onTime = !dateFulfilled.After(dateRequested)
	return fulfilled, onTime
}

package models

// GroupCount is a single group-by bucket returned by aggregation queries.
type GroupCount struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

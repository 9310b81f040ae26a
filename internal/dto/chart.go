package dto

// ChartSlice is a single labelled value in a dashboard chart payload.
type ChartSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

package models

// WorkshopCount is one bucket of a statistics breakdown.
type WorkshopCount struct {
	Key   string `db:"key" json:"key"`
	Label string `db:"label" json:"label"`
	Count int    `db:"count" json:"count"`
}

// WorkshopSummary aggregates filtered workshops by state and by type.
type WorkshopSummary struct {
	Total   int             `json:"total"`
	ByState []WorkshopCount `json:"by_state"`
	ByType  []WorkshopCount `json:"by_type"`
}

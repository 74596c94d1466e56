package models

import "time"

// SortOrder orders workshop listings by date.
type SortOrder string

const (
	SortDateAscending  SortOrder = "date"
	SortDateDescending SortOrder = "-date"
)

// Label returns the human label shown next to the sort choice.
func (s SortOrder) Label() string {
	if s == SortDateDescending {
		return "Latest"
	}
	return "Oldest"
}

// FilterCriteria is the validated form of a workshop statistics query.
// FromDate is not required to precede ToDate.
type FilterCriteria struct {
	FromDate       time.Time  `json:"from_date"`
	ToDate         time.Time  `json:"to_date"`
	WorkshopTypeID *string    `json:"workshop_type,omitempty"`
	State          *StateCode `json:"state,omitempty"`
	ShowMine       bool       `json:"show_workshops"`
	Sort           SortOrder  `json:"sort"`
}

// WorkshopFilter narrows down workshops at the repository layer.
type WorkshopFilter struct {
	FilterCriteria
	Statuses []WorkshopStatus
	OwnerID  string
	Page     int
	PageSize int
}

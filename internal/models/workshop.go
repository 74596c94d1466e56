package models

import "time"

// WorkshopStatus tracks the review lifecycle of a workshop.
type WorkshopStatus string

const (
	WorkshopStatusPending  WorkshopStatus = "PENDING"
	WorkshopStatusAccepted WorkshopStatus = "ACCEPTED"
	WorkshopStatusDeleted  WorkshopStatus = "DELETED"
)

// Workshop represents a scheduled or proposed workshop.
type Workshop struct {
	ID               string         `db:"id" json:"id"`
	WorkshopTypeID   string         `db:"workshop_type_id" json:"workshop_type_id"`
	WorkshopTypeName string         `db:"workshop_type_name" json:"workshop_type_name,omitempty"`
	CoordinatorID    string         `db:"coordinator_id" json:"coordinator_id"`
	CoordinatorName  string         `db:"coordinator_name" json:"coordinator_name,omitempty"`
	InstructorID     *string        `db:"instructor_id" json:"instructor_id,omitempty"`
	InstructorName   *string        `db:"instructor_name" json:"instructor_name,omitempty"`
	State            StateCode      `db:"state" json:"state"`
	Date             time.Time      `db:"date" json:"date"`
	Status           WorkshopStatus `db:"status" json:"status"`
	TermsAccepted    bool           `db:"tnc_accepted" json:"tnc_accepted"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// WorkshopType is a category of workshop offered by instructors.
type WorkshopType struct {
	ID                 string    `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	Description        string    `db:"description" json:"description"`
	DurationDays       int       `db:"duration" json:"duration"`
	TermsAndConditions string    `db:"terms_and_conditions" json:"terms_and_conditions"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

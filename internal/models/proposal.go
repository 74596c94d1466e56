package models

import "time"

// RejectionReason explains why a workshop proposal was not accepted.
type RejectionReason string

const (
	RejectionTooSoon          RejectionReason = "TOO_SOON"
	RejectionTooFar           RejectionReason = "TOO_FAR"
	RejectionWeekend          RejectionReason = "WEEKEND"
	RejectionTermsNotAccepted RejectionReason = "TERMS_NOT_ACCEPTED"
)

var rejectionMessages = map[RejectionReason]string{
	RejectionTooSoon:          "Workshop date must be at least 3 days from today.",
	RejectionTooFar:           "Workshop date cannot be more than 1 year from today.",
	RejectionWeekend:          "Workshop cannot be scheduled on weekends.",
	RejectionTermsNotAccepted: "You must accept the terms and conditions.",
}

// Message returns the user-facing text for the reason.
func (r RejectionReason) Message() string {
	if msg, ok := rejectionMessages[r]; ok {
		return msg
	}
	return string(r)
}

// Field names the proposal field the reason belongs to.
func (r RejectionReason) Field() string {
	if r == RejectionTermsNotAccepted {
		return "tnc_accepted"
	}
	return "date"
}

// ProposalInput is a single workshop proposal submission.
type ProposalInput struct {
	WorkshopTypeID string
	ProposedDate   time.Time
	TermsAccepted  bool
}

// ProposalWindow is the inclusive range of dates a proposal may target.
type ProposalWindow struct {
	MinDate time.Time
	MaxDate time.Time
}

// Contains reports whether date lies within the window.
func (w ProposalWindow) Contains(date time.Time) bool {
	return !date.Before(w.MinDate) && !date.After(w.MaxDate)
}

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/workshop-portal/stats-api/internal/models"
)

// ProposalRules defines the window of dates a workshop may be proposed for,
// counted in calendar days from today.
type ProposalRules struct {
	MinLeadDays int
	MaxLeadDays int
}

// DefaultProposalRules allows dates from three days to one year ahead.
var DefaultProposalRules = ProposalRules{MinLeadDays: 3, MaxLeadDays: 365}

// Window returns the inclusive range of dates accepted relative to today.
func (r ProposalRules) Window(today time.Time) models.ProposalWindow {
	base := models.DateOf(today)
	return models.ProposalWindow{
		MinDate: models.AddDays(base, r.MinLeadDays),
		MaxDate: models.AddDays(base, r.MaxLeadDays),
	}
}

// CheckDate returns the first rule proposed violates, or "" when the date is
// acceptable. Rules are checked in order: too soon, too far, weekend.
func (r ProposalRules) CheckDate(proposed, today time.Time) models.RejectionReason {
	date := models.DateOf(proposed)
	window := r.Window(today)
	switch {
	case !window.Contains(date):
		if date.Before(window.MinDate) {
			return models.RejectionTooSoon
		}
		return models.RejectionTooFar
	case models.IsWeekend(date):
		return models.RejectionWeekend
	default:
		return ""
	}
}

// Validate checks both the date and the terms flag of a proposal. The date
// reason, if any, is listed before the terms reason.
func (r ProposalRules) Validate(input models.ProposalInput, today time.Time) error {
	var reasons []models.RejectionReason
	if reason := r.CheckDate(input.ProposedDate, today); reason != "" {
		reasons = append(reasons, reason)
	}
	if !input.TermsAccepted {
		reasons = append(reasons, models.RejectionTermsNotAccepted)
	}
	if len(reasons) == 0 {
		return nil
	}
	return &RejectionError{Reasons: reasons, rules: r}
}

// Message renders the user-facing text for reason under these rules.
func (r ProposalRules) Message(reason models.RejectionReason) string {
	switch reason {
	case models.RejectionTooSoon:
		if r.MinLeadDays == DefaultProposalRules.MinLeadDays {
			return reason.Message()
		}
		return fmt.Sprintf("Workshop date must be at least %d days from today.", r.MinLeadDays)
	case models.RejectionTooFar:
		if r.MaxLeadDays == DefaultProposalRules.MaxLeadDays {
			return reason.Message()
		}
		return fmt.Sprintf("Workshop date cannot be more than %d days from today.", r.MaxLeadDays)
	default:
		return reason.Message()
	}
}

// ValidateProposalDate applies DefaultProposalRules to a single date.
func ValidateProposalDate(proposed, today time.Time) models.RejectionReason {
	return DefaultProposalRules.CheckDate(proposed, today)
}

// RejectionError is returned when a proposal breaks one or more rules.
type RejectionError struct {
	Reasons []models.RejectionReason
	rules   ProposalRules
}

func (e *RejectionError) Error() string {
	parts := make([]string, len(e.Reasons))
	for i, reason := range e.Reasons {
		parts[i] = string(reason)
	}
	return "proposal rejected: " + strings.Join(parts, ", ")
}

// Messages returns the user-facing text for each reason, in order.
func (e *RejectionError) Messages() []string {
	out := make([]string, len(e.Reasons))
	for i, reason := range e.Reasons {
		out[i] = e.rules.Message(reason)
	}
	return out
}

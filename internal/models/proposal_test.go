package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRejectionReasonMessage(t *testing.T) {
	assert.Equal(t, "Workshop cannot be scheduled on weekends.", RejectionWeekend.Message())
	assert.Equal(t, "date", RejectionTooFar.Field())
	assert.Equal(t, "tnc_accepted", RejectionTermsNotAccepted.Field())
	assert.Equal(t, "UNKNOWN", RejectionReason("UNKNOWN").Message())
}

func TestProposalWindowContainsIsInclusive(t *testing.T) {
	w := ProposalWindow{
		MinDate: time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		MaxDate: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, w.Contains(w.MinDate))
	assert.True(t, w.Contains(w.MaxDate))
	assert.False(t, w.Contains(AddDays(w.MinDate, -1)))
	assert.False(t, w.Contains(AddDays(w.MaxDate, 1)))
}

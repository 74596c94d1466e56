package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Clone(ErrFieldErrors, "bad date"))

	got := FromError(wrapped)

	assert.Equal(t, ErrFieldErrors.Code, got.Code)
	assert.Equal(t, "bad date", got.Message)
	assert.Equal(t, http.StatusBadRequest, got.Status)
}

func TestFromErrorFallsBackToInternal(t *testing.T) {
	got := FromError(errors.New("boom"))

	assert.Equal(t, ErrInternal.Code, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Nil(t, FromError(nil))
}

func TestIsComparesByCode(t *testing.T) {
	err := WithDetails(ErrProposalRejected, []string{"WEEKEND"})

	assert.True(t, errors.Is(err, ErrProposalRejected))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, []string{"WEEKEND"}, err.Details)
	assert.Nil(t, ErrProposalRejected.Details)
}

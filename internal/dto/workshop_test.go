package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkshopFilterParamsMerge(t *testing.T) {
	raw := WorkshopFilterParams{FromDate: "2024-06-01", State: "IN-MH"}
	initial := WorkshopFilterParams{FromDate: "2024-01-01", ToDate: "2024-01-15", Sort: "date", State: "IN-KA"}

	merged := raw.Merge(initial)

	assert.Equal(t, "2024-06-01", merged.FromDate)
	assert.Equal(t, "2024-01-15", merged.ToDate)
	assert.Equal(t, "IN-MH", merged.State)
	assert.Equal(t, "date", merged.Sort)
	assert.Empty(t, merged.WorkshopType)
}

func TestFieldErrors(t *testing.T) {
	var errs FieldErrors
	assert.False(t, errs.Has("from_date"))
	errs.Add("from_date", "Enter a valid date.")
	assert.True(t, errs.Has("from_date"))
	assert.Len(t, errs, 1)
}

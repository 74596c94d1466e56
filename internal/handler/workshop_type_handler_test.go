package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workshop-portal/stats-api/internal/models"
	appErrors "github.com/workshop-portal/stats-api/pkg/errors"
)

type workshopTypeServiceMock struct {
	types []models.WorkshopType
}

func (m *workshopTypeServiceMock) List(ctx context.Context) ([]models.WorkshopType, error) {
	return m.types, nil
}

func (m *workshopTypeServiceMock) Get(ctx context.Context, id string) (*models.WorkshopType, error) {
	for i := range m.types {
		if m.types[i].ID == id {
			return &m.types[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "workshop type not found")
}

func TestWorkshopTypeHandlerList(t *testing.T) {
	handler := NewWorkshopTypeHandler(&workshopTypeServiceMock{types: []models.WorkshopType{{ID: "type-1", Name: "Python"}}})
	c, w := newTestContext(http.MethodGet, "/workshop-types", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Python"`)
}

func TestWorkshopTypeHandlerGetMissing(t *testing.T) {
	handler := NewWorkshopTypeHandler(&workshopTypeServiceMock{})
	c, w := newTestContext(http.MethodGet, "/workshop-types/nope", nil)
	c.Params = append(c.Params, ginParam("id", "nope"))

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkshopTypeHandlerStates(t *testing.T) {
	handler := NewWorkshopTypeHandler(&workshopTypeServiceMock{})
	c, w := newTestContext(http.MethodGet, "/states", nil)

	handler.States(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"code":"IN-MH","name":"Maharashtra"}`)
}

package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workshop-portal/stats-api/internal/models"
	appErrors "github.com/workshop-portal/stats-api/pkg/errors"
)

type workshopTypeRepoStub struct {
	types     []models.WorkshopType
	listCalls int
}

func (s *workshopTypeRepoStub) List(ctx context.Context) ([]models.WorkshopType, error) {
	s.listCalls++
	return s.types, nil
}

func (s *workshopTypeRepoStub) FindByID(ctx context.Context, id string) (*models.WorkshopType, error) {
	for i := range s.types {
		if s.types[i].ID == id {
			return &s.types[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func TestWorkshopTypeServiceListUsesCache(t *testing.T) {
	repo := &workshopTypeRepoStub{types: []models.WorkshopType{{ID: "t-1", Name: "Python"}}}
	cache := NewCacheService(newMemoryCache(), nil, time.Minute, nil, true)
	svc := NewWorkshopTypeService(repo, cache, time.Minute, nil)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.listCalls)
}

func TestWorkshopTypeServiceListWithoutCache(t *testing.T) {
	repo := &workshopTypeRepoStub{}
	svc := NewWorkshopTypeService(repo, nil, time.Minute, nil)

	types, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, types)
	assert.Empty(t, types)
}

func TestWorkshopTypeServiceGetNotFound(t *testing.T) {
	svc := NewWorkshopTypeService(&workshopTypeRepoStub{}, nil, time.Minute, nil)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

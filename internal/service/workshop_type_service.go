package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/workshop-portal/stats-api/internal/models"
	appErrors "github.com/workshop-portal/stats-api/pkg/errors"
)

const workshopTypesCacheKey = "workshop_types:all"

type workshopTypeRepository interface {
	List(ctx context.Context) ([]models.WorkshopType, error)
	FindByID(ctx context.Context, id string) (*models.WorkshopType, error)
}

// WorkshopTypeService resolves workshop types for filters and proposals.
type WorkshopTypeService struct {
	repo     workshopTypeRepository
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewWorkshopTypeService constructs the service.
func NewWorkshopTypeService(repo workshopTypeRepository, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *WorkshopTypeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkshopTypeService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// List returns every workshop type ordered by name.
func (s *WorkshopTypeService) List(ctx context.Context) ([]models.WorkshopType, error) {
	var cached []models.WorkshopType
	if hit, _ := s.cache.Get(ctx, workshopTypesCacheKey, &cached); hit {
		return cached, nil
	}

	types, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list workshop types")
	}
	if types == nil {
		types = []models.WorkshopType{}
	}
	_ = s.cache.Set(ctx, workshopTypesCacheKey, types, s.cacheTTL)
	return types, nil
}

// Get returns a workshop type by id.
func (s *WorkshopTypeService) Get(ctx context.Context, id string) (*models.WorkshopType, error) {
	workshopType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "workshop type not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load workshop type")
	}
	return workshopType, nil
}

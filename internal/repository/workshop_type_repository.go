package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/workshop-portal/stats-api/internal/models"
)

// WorkshopTypeRepository reads workshop types.
type WorkshopTypeRepository struct {
	db *sqlx.DB
}

// NewWorkshopTypeRepository constructs a workshop type repository.
func NewWorkshopTypeRepository(db *sqlx.DB) *WorkshopTypeRepository {
	return &WorkshopTypeRepository{db: db}
}

// List returns every workshop type ordered by name.
func (r *WorkshopTypeRepository) List(ctx context.Context) ([]models.WorkshopType, error) {
	const query = `SELECT id, name, description, duration, terms_and_conditions, created_at FROM workshop_types ORDER BY name ASC`
	var types []models.WorkshopType
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, fmt.Errorf("list workshop types: %w", err)
	}
	return types, nil
}

// FindByID fetches a workshop type. sql.ErrNoRows is returned unwrapped when absent.
func (r *WorkshopTypeRepository) FindByID(ctx context.Context, id string) (*models.WorkshopType, error) {
	const query = `SELECT id, name, description, duration, terms_and_conditions, created_at FROM workshop_types WHERE id = $1`
	var workshopType models.WorkshopType
	if err := r.db.GetContext(ctx, &workshopType, query, id); err != nil {
		return nil, err
	}
	return &workshopType, nil
}

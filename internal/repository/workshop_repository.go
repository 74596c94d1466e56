package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/workshop-portal/stats-api/internal/models"
)

const workshopColumns = `w.id, w.workshop_type_id, wt.name AS workshop_type_name, w.coordinator_id, c.full_name AS coordinator_name,
w.instructor_id, i.full_name AS instructor_name, c.state AS state, w.date, w.status, w.tnc_accepted, w.created_at, w.updated_at`

const workshopJoins = `FROM workshops w
JOIN workshop_types wt ON wt.id = w.workshop_type_id
JOIN users c ON c.id = w.coordinator_id
LEFT JOIN users i ON i.id = w.instructor_id`

// WorkshopRepository persists workshops and answers statistics queries.
type WorkshopRepository struct {
	db *sqlx.DB
}

// NewWorkshopRepository constructs a workshop repository.
func NewWorkshopRepository(db *sqlx.DB) *WorkshopRepository {
	return &WorkshopRepository{db: db}
}

// buildWorkshopWhere translates the filter into a WHERE clause. The date
// range is applied as given, so an inverted range matches nothing.
func buildWorkshopWhere(filter models.WorkshopFilter) (string, []interface{}) {
	where := []string{"w.date >= $1", "w.date <= $2"}
	args := []interface{}{filter.FromDate, filter.ToDate}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		where = append(where, fmt.Sprintf("w.status = ANY($%d)", len(args)+1))
		args = append(args, pq.Array(statuses))
	}
	if filter.WorkshopTypeID != nil {
		where = append(where, fmt.Sprintf("w.workshop_type_id = $%d", len(args)+1))
		args = append(args, *filter.WorkshopTypeID)
	}
	if filter.State != nil {
		where = append(where, fmt.Sprintf("c.state = $%d", len(args)+1))
		args = append(args, string(*filter.State))
	}
	if filter.OwnerID != "" {
		n := len(args) + 1
		where = append(where, fmt.Sprintf("(w.coordinator_id = $%d OR w.instructor_id = $%d)", n, n))
		args = append(args, filter.OwnerID)
	}
	return strings.Join(where, " AND "), args
}

func orderClause(sort models.SortOrder) string {
	if sort == models.SortDateDescending {
		return "ORDER BY w.date DESC, w.id DESC"
	}
	return "ORDER BY w.date ASC, w.id ASC"
}

// List returns workshops matching filters along with the total count.
func (r *WorkshopRepository) List(ctx context.Context, filter models.WorkshopFilter) ([]models.Workshop, int, error) {
	whereClause, args := buildWorkshopWhere(filter)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 50
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s\n%s\nWHERE %s %s LIMIT %d OFFSET %d", workshopColumns, workshopJoins, whereClause, orderClause(filter.Sort), size, offset)
	var workshops []models.Workshop
	if err := r.db.SelectContext(ctx, &workshops, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list workshops: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*)\n%s\nWHERE %s", workshopJoins, whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count workshops: %w", err)
	}
	return workshops, total, nil
}

// Summary counts matching workshops overall, per coordinator state and per workshop type.
func (r *WorkshopRepository) Summary(ctx context.Context, filter models.WorkshopFilter) (*models.WorkshopSummary, error) {
	whereClause, args := buildWorkshopWhere(filter)
	summary := &models.WorkshopSummary{ByState: []models.WorkshopCount{}, ByType: []models.WorkshopCount{}}

	byState := fmt.Sprintf(`SELECT c.state AS key, c.state AS label, COUNT(*) AS count
%s
WHERE %s GROUP BY c.state ORDER BY count DESC, c.state ASC`, workshopJoins, whereClause)
	if err := r.db.SelectContext(ctx, &summary.ByState, byState, args...); err != nil {
		return nil, fmt.Errorf("summarise workshops by state: %w", err)
	}

	byType := fmt.Sprintf(`SELECT wt.id AS key, wt.name AS label, COUNT(*) AS count
%s
WHERE %s GROUP BY wt.id, wt.name ORDER BY count DESC, wt.name ASC`, workshopJoins, whereClause)
	if err := r.db.SelectContext(ctx, &summary.ByType, byType, args...); err != nil {
		return nil, fmt.Errorf("summarise workshops by type: %w", err)
	}

	for _, bucket := range summary.ByType {
		summary.Total += bucket.Count
	}
	return summary, nil
}

// Create inserts a workshop.
func (r *WorkshopRepository) Create(ctx context.Context, workshop *models.Workshop) error {
	if workshop.ID == "" {
		workshop.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if workshop.CreatedAt.IsZero() {
		workshop.CreatedAt = now
	}
	workshop.UpdatedAt = now
	query := `INSERT INTO workshops (id, workshop_type_id, coordinator_id, instructor_id, date, status, tnc_accepted, created_at, updated_at)
VALUES (:id, :workshop_type_id, :coordinator_id, :instructor_id, :date, :status, :tnc_accepted, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, workshop); err != nil {
		return fmt.Errorf("create workshop: %w", err)
	}
	return nil
}

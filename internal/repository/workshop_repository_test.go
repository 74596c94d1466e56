package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workshop-portal/stats-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	cleanup := func() {
		_ = sqlxDB.Close()
	}
	return sqlxDB, mock, cleanup
}

var workshopRowColumns = []string{"id", "workshop_type_id", "workshop_type_name", "coordinator_id", "coordinator_name",
	"instructor_id", "instructor_name", "state", "date", "status", "tnc_accepted", "created_at", "updated_at"}

func sampleFilter() models.WorkshopFilter {
	return models.WorkshopFilter{
		FilterCriteria: models.FilterCriteria{
			FromDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			ToDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			Sort:     models.SortDateAscending,
		},
		Statuses: []models.WorkshopStatus{models.WorkshopStatusAccepted},
		Page:     2,
		PageSize: 10,
	}
}

func TestBuildWorkshopWhereAllFilters(t *testing.T) {
	filter := sampleFilter()
	typeID := "type-1"
	state := models.StateCode("IN-MH")
	filter.WorkshopTypeID = &typeID
	filter.State = &state
	filter.OwnerID = "user-1"

	where, args := buildWorkshopWhere(filter)

	assert.Equal(t, "w.date >= $1 AND w.date <= $2 AND w.status = ANY($3) AND w.workshop_type_id = $4 AND c.state = $5 AND (w.coordinator_id = $6 OR w.instructor_id = $6)", where)
	require.Len(t, args, 6)
	assert.Equal(t, "type-1", args[3])
	assert.Equal(t, "IN-MH", args[4])
	assert.Equal(t, "user-1", args[5])
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "ORDER BY w.date DESC, w.id DESC", orderClause(models.SortDateDescending))
	assert.Equal(t, "ORDER BY w.date ASC, w.id ASC", orderClause(models.SortDateAscending))
}

func TestWorkshopRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWorkshopRepository(db)
	filter := sampleFilter()
	now := time.Now()

	rows := sqlmock.NewRows(workshopRowColumns).
		AddRow("w-1", "type-1", "Python", "coord-1", "Asha", nil, nil, "IN-MH", filter.FromDate, "ACCEPTED", true, now, now).
		AddRow("w-2", "type-1", "Python", "coord-2", "Vikram", "inst-1", "Ravi", "IN-KA", filter.ToDate, "ACCEPTED", true, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY w.date ASC, w.id ASC LIMIT 10 OFFSET 10")).
		WithArgs(filter.FromDate, filter.ToDate, sqlmock.AnyArg()).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(filter.FromDate, filter.ToDate, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	workshops, total, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, workshops, 2)
	assert.Nil(t, workshops[0].InstructorID)
	assert.Equal(t, models.StateCode("IN-MH"), workshops[0].State)
	require.NotNil(t, workshops[1].InstructorName)
	assert.Equal(t, "Ravi", *workshops[1].InstructorName)
	assert.Equal(t, models.WorkshopStatusAccepted, workshops[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkshopRepositoryListDescendingOwner(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWorkshopRepository(db)
	filter := sampleFilter()
	filter.Sort = models.SortDateDescending
	filter.OwnerID = "coord-1"
	filter.Page = 0

	mock.ExpectQuery(regexp.QuoteMeta("(w.coordinator_id = $4 OR w.instructor_id = $4) ORDER BY w.date DESC, w.id DESC LIMIT 10 OFFSET 0")).
		WithArgs(filter.FromDate, filter.ToDate, sqlmock.AnyArg(), "coord-1").
		WillReturnRows(sqlmock.NewRows(workshopRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(filter.FromDate, filter.ToDate, sqlmock.AnyArg(), "coord-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	workshops, total, err := repo.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, workshops)
	assert.Zero(t, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkshopRepositorySummary(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWorkshopRepository(db)
	filter := sampleFilter()

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY c.state")).
		WithArgs(filter.FromDate, filter.ToDate, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"key", "label", "count"}).
			AddRow("IN-MH", "IN-MH", 4).
			AddRow("IN-KA", "IN-KA", 1))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY wt.id, wt.name")).
		WithArgs(filter.FromDate, filter.ToDate, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"key", "label", "count"}).
			AddRow("type-1", "Python", 3).
			AddRow("type-2", "Scilab", 2))

	summary, err := repo.Summary(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Total)
	assert.Len(t, summary.ByState, 2)
	assert.Equal(t, "Python", summary.ByType[0].Label)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkshopRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWorkshopRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO workshops")).
		WithArgs(sqlmock.AnyArg(), "type-1", "coord-1", nil, time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC), "PENDING", true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	workshop := &models.Workshop{
		WorkshopTypeID: "type-1",
		CoordinatorID:  "coord-1",
		Date:           time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		Status:         models.WorkshopStatusPending,
		TermsAccepted:  true,
	}
	require.NoError(t, repo.Create(context.Background(), workshop))
	assert.NotEmpty(t, workshop.ID)
	assert.False(t, workshop.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

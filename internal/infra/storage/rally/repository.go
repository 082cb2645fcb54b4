package rally

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/DWS-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий многособачьих походов (rally)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория походов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый поход
func (r *Repository) Create(ctx context.Context, event *domain.RallyEvent) (*domain.RallyEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rally_events").
		Columns(
			"year",
			"week",
			"day",
			"start_block",
			"capacity",
			"dog_ids",
			"notes",
		).
		Values(
			event.Year,
			event.Week,
			event.Day,
			event.StartBlock,
			event.Capacity,
			pq.Array(event.DogIDs),
			event.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// GetByID получает поход по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RallyEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := rallyColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	event, err := scanRallyRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRallyNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan rally: %v", ErrScanRow, err)
	}

	return event, nil
}

// GetByWeek получает все походы указанной недели
func (r *Repository) GetByWeek(ctx context.Context, year, week int) ([]*domain.RallyEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := rallyColumns().
		Where(squirrel.Eq{"year": year, "week": week}).
		OrderBy("day ASC, start_block ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.RallyEvent, 0)
	for rows.Next() {
		event, err := scanRallyRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByWeek - scan row: %v", ErrScanRow, err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByWeek - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

func rallyColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"year",
		"week",
		"day",
		"start_block",
		"capacity",
		"dog_ids",
		"notes",
		"created_at",
		"updated_at",
	).From("rally_events")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRallyRow(row rowScanner) (*domain.RallyEvent, error) {
	var event domain.RallyEvent
	var dogIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&event.ID,
		&event.Year,
		&event.Week,
		&event.Day,
		&event.StartBlock,
		&event.Capacity,
		&dogIDs,
		&event.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	event.DogIDs = []int64(dogIDs)
	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return &event, nil
}

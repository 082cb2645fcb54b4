package routine

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

// Repository репозиторий рутин собак
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рутин
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает или обновляет рутину собаки
// На собаку существует максимум одна рутина (уникальность по dog_id)
func (r *Repository) Upsert(ctx context.Context, routine *domain.DogRoutine) (*domain.DogRoutine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	days := make([]string, 0, len(routine.PreferredDays))
	for _, d := range routine.PreferredDays {
		days = append(days, string(d))
	}

	query, args, err := psqlbuilder.Insert("dog_routines").
		Columns(
			"dog_id",
			"tier",
			"preferred_sector",
			"preferred_time",
			"preferred_days",
			"preferred_walk_type",
			"notes",
		).
		Values(
			routine.DogID,
			routine.Tier,
			routine.PreferredSector,
			routine.PreferredTime,
			pq.Array(days),
			routine.PreferredWalkType,
			routine.Notes,
		).
		Suffix(`ON CONFLICT (dog_id) DO UPDATE SET
			tier = EXCLUDED.tier,
			preferred_sector = EXCLUDED.preferred_sector,
			preferred_time = EXCLUDED.preferred_time,
			preferred_days = EXCLUDED.preferred_days,
			preferred_walk_type = EXCLUDED.preferred_walk_type,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&routine.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	routine.CreatedAt = createdAt.Time
	routine.UpdatedAt = updatedAt.Time

	return routine, nil
}

// GetByDogID получает рутину собаки
func (r *Repository) GetByDogID(ctx context.Context, dogID int64) (*domain.DogRoutine, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := routineColumns().
		Where(squirrel.Eq{"dog_id": dogID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDogID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	routine, err := scanRoutineRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, fmt.Errorf("%w: GetByDogID - scan routine: %v", ErrScanRow, err)
	}

	return routine, nil
}

// GetByDogIDs получает рутины набора собак (для аналитики недели)
// Собаки без рутины просто отсутствуют в результате
func (r *Repository) GetByDogIDs(ctx context.Context, dogIDs []int64) (map[int64]*domain.DogRoutine, error) {
	result := make(map[int64]*domain.DogRoutine, len(dogIDs))
	if len(dogIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := routineColumns().
		Where(squirrel.Eq{"dog_id": dogIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDogIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDogIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		routine, err := scanRoutineRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDogIDs - scan row: %v", ErrScanRow, err)
		}
		result[routine.DogID] = routine
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDogIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func routineColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"dog_id",
		"tier",
		"preferred_sector",
		"preferred_time",
		"preferred_days",
		"preferred_walk_type",
		"notes",
		"created_at",
		"updated_at",
	).From("dog_routines")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoutineRow(row rowScanner) (*domain.DogRoutine, error) {
	var routine domain.DogRoutine
	var walkType sql.NullString
	var days pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&routine.ID,
		&routine.DogID,
		&routine.Tier,
		&routine.PreferredSector,
		&routine.PreferredTime,
		&days,
		&walkType,
		&routine.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if walkType.Valid {
		wt := domain.WalkType(walkType.String)
		routine.PreferredWalkType = &wt
	}
	routine.PreferredDays = make([]domain.Weekday, 0, len(days))
	for _, d := range days {
		routine.PreferredDays = append(routine.PreferredDays, domain.Weekday(d))
	}

	routine.CreatedAt = createdAt.Time
	routine.UpdatedAt = updatedAt.Time

	return &routine, nil
}

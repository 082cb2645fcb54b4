package assignment

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

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

// Repository репозиторий назначений собак в слоты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое назначение
// Уникальность (dog_id, slot_id, year, week) защищена ограничением БД:
// даже при гонке двух операторов дубль невозможен
func (r *Repository) Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("assignments").
		Columns(
			"dog_id",
			"slot_id",
			"year",
			"week",
			"confirmed",
			"completed",
			"override_price",
			"notes",
		).
		Values(
			a.DogID,
			a.SlotID,
			a.Year,
			a.Week,
			a.Confirmed,
			a.Completed,
			a.OverridePrice,
			a.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateAssignment
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает назначение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := assignmentColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	a, err := scanAssignmentRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan assignment: %v", ErrScanRow, err)
	}

	return a, nil
}

// GetByWeek получает все назначения указанной недели
// Внутри транзакции добавляет FOR UPDATE: проверка вместимости и вставка
// выполняются под одной блокировкой, что закрывает гонку двух операторов
func (r *Repository) GetByWeek(ctx context.Context, year, week int) ([]*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := assignmentColumns().
		Where(squirrel.Eq{"year": year, "week": week}).
		OrderBy("slot_id ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetByDogAndWeek получает назначения собаки на указанную неделю
func (r *Repository) GetByDogAndWeek(ctx context.Context, dogID int64, year, week int) ([]*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := assignmentColumns().
		Where(squirrel.Eq{"dog_id": dogID, "year": year, "week": week}).
		OrderBy("slot_id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDogAndWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDogAndWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetCompletedByWeek получает завершённые назначения недели (для синхронизации биллинга)
func (r *Repository) GetCompletedByWeek(ctx context.Context, year, week int) ([]*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := assignmentColumns().
		Where(squirrel.Eq{"year": year, "week": week, "completed": true}).
		OrderBy("slot_id ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCompletedByWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCompletedByWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// SetCompleted выставляет флаг завершения прогулки
// Флаг переключается ровно один раз: повторный вызов возвращает ErrAlreadyCompleted
func (r *Repository) SetCompleted(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("assignments").
		Set("completed", true).
		Set("completed_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "completed": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetCompleted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCompleted - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCompleted - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо назначения нет, либо оно уже завершено - различаем отдельным запросом
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrAlreadyCompleted
	}

	return nil
}

// Delete удаляет назначение (снятие собаки со слота)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}

func assignmentColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"dog_id",
		"slot_id",
		"year",
		"week",
		"confirmed",
		"completed",
		"completed_at",
		"override_price",
		"notes",
		"created_at",
		"updated_at",
	).From("assignments")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssignmentRow(row rowScanner) (*domain.Assignment, error) {
	var a domain.Assignment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.DogID,
		&a.SlotID,
		&a.Year,
		&a.Week,
		&a.Confirmed,
		&a.Completed,
		&a.CompletedAt,
		&a.OverridePrice,
		&a.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func scanAssignments(rows *sql.Rows) ([]*domain.Assignment, error) {
	assignments := make([]*domain.Assignment, 0)

	for rows.Next() {
		a, err := scanAssignmentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAssignments - scan row: %v", ErrScanRow, err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAssignments - rows error: %v", ErrScanRow, err)
	}

	return assignments, nil
}

package billing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/DWS-ScheduleService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

// Repository репозиторий строк биллинга (внешний леджер выставления счетов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория биллинга
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindByKey ищет строку биллинга по натуральному ключу (dog_id, service_date, start_time)
// Это lookup-часть идемпотентной синхронизации: найденная строка означает,
// что прогулка уже выставлена к оплате
// Внутри транзакции добавляет FOR UPDATE, чтобы lookup-then-insert был атомарен
func (r *Repository) FindByKey(ctx context.Context, key domain.BillingKey) (*domain.BillableRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := recordColumns().
		Where(squirrel.Eq{
			"dog_id":       key.DogID,
			"service_date": key.ServiceDate,
			"start_time":   key.StartTime,
		})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByKey - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	record, err := scanRecordRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("%w: FindByKey - scan record: %v", ErrScanRow, err)
	}

	return record, nil
}

// Insert создает новую строку биллинга
// Уникальное ограничение на натуральный ключ - последняя линия обороны
// против дублей при конкурентной синхронизации
func (r *Repository) Insert(ctx context.Context, record *domain.BillableRecord) (*domain.BillableRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("billable_records").
		Columns(
			"external_ref",
			"dog_id",
			"owner_id",
			"service_category",
			"service_date",
			"start_time",
			"duration_minutes",
			"unit_price",
			"quantity",
			"status",
			"provenance",
		).
		Values(
			record.ExternalRef,
			record.DogID,
			record.OwnerID,
			record.ServiceCategory,
			record.ServiceDate,
			record.StartTime,
			record.DurationMinutes,
			record.UnitPrice,
			record.Quantity,
			record.Status,
			record.Provenance,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time

	return record, nil
}

// ListByDateRange возвращает строки биллинга за период (для сверки недели)
func (r *Repository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.BillableRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := recordColumns().
		Where(squirrel.GtOrEq{"service_date": from}).
		Where(squirrel.LtOrEq{"service_date": to}).
		OrderBy("service_date ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.BillableRecord, 0)
	for rows.Next() {
		record, err := scanRecordRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDateRange - scan row: %v", ErrScanRow, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}

func recordColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"external_ref",
		"dog_id",
		"owner_id",
		"service_category",
		"service_date",
		"start_time",
		"duration_minutes",
		"unit_price",
		"quantity",
		"status",
		"provenance",
		"created_at",
	).From("billable_records")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecordRow(row rowScanner) (*domain.BillableRecord, error) {
	var record domain.BillableRecord
	var createdAt sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.ExternalRef,
		&record.DogID,
		&record.OwnerID,
		&record.ServiceCategory,
		&record.ServiceDate,
		&record.StartTime,
		&record.DurationMinutes,
		&record.UnitPrice,
		&record.Quantity,
		&record.Status,
		&record.Provenance,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Time

	return &record, nil
}

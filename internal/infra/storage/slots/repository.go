package slots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/DWS-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий шаблонов слотов и недельных оверрайдов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureTemplates идемпотентно создает все 15 шаблонов слотов (5 дней x 3 блока)
// Существующие шаблоны не перезаписываются: настройки владельца сохраняются
func (r *Repository) EnsureTemplates(ctx context.Context, engine domain.EngineConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("slot_templates").
		Columns(
			"slot_id",
			"day",
			"block",
			"pickup_minutes",
			"walk_minutes",
			"return_minutes",
			"walk_start_time",
			"default_walk_type",
			"default_sector",
			"default_capacity",
		)

	for _, day := range domain.Weekdays {
		for _, block := range domain.Blocks {
			tariff, _ := engine.TariffFor(domain.WalkCollective)
			builder = builder.Values(
				domain.NewSlotID(day, block),
				day,
				block,
				30,
				tariff.DurationMinutes,
				30,
				engine.BlockWalkStart[block],
				domain.WalkCollective,
				"",
				4,
			)
		}
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (slot_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: EnsureTemplates - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: EnsureTemplates - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetTemplates возвращает все шаблоны слотов в порядке день-затем-блок
func (r *Repository) GetTemplates(ctx context.Context) ([]*domain.SlotTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slot_id",
		"day",
		"block",
		"pickup_minutes",
		"walk_minutes",
		"return_minutes",
		"walk_start_time",
		"default_walk_type",
		"default_sector",
		"default_capacity",
		"created_at",
		"updated_at",
	).
		From("slot_templates").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	templates := make([]*domain.SlotTemplate, 0, 15)
	for rows.Next() {
		var tpl domain.SlotTemplate
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&tpl.ID,
			&tpl.SlotID,
			&tpl.Day,
			&tpl.Block,
			&tpl.PickupMinutes,
			&tpl.WalkMinutes,
			&tpl.ReturnMinutes,
			&tpl.WalkStartTime,
			&tpl.DefaultWalkType,
			&tpl.DefaultSector,
			&tpl.DefaultCapacity,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTemplates - scan row: %v", ErrScanRow, err)
		}

		tpl.CreatedAt = createdAt.Time
		tpl.UpdatedAt = updatedAt.Time
		templates = append(templates, &tpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - rows error: %v", ErrScanRow, err)
	}

	// Порядок день-затем-блок фиксируем в коде, а не в SQL:
	// лексикографическая сортировка по slot_id дала бы JE раньше LU
	sort.Slice(templates, func(i, j int) bool {
		if templates[i].Day != templates[j].Day {
			return templates[i].Day.Offset() < templates[j].Day.Offset()
		}
		return templates[i].Block.Index() < templates[j].Block.Index()
	})

	return templates, nil
}

// GetOverrides возвращает все оверрайды указанной недели
func (r *Repository) GetOverrides(ctx context.Context, year, week int) ([]*domain.WeekOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := overrideColumns().
		Where(squirrel.Eq{"year": year, "week": week}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.WeekOverride, 0)
	for rows.Next() {
		ovr, err := scanOverride(rows)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, ovr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// GetOverride возвращает оверрайд одного слота недели
func (r *Repository) GetOverride(ctx context.Context, year, week int, slotID domain.SlotID) (*domain.WeekOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := overrideColumns().
		Where(squirrel.Eq{"year": year, "week": week, "slot_id": slotID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverride - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: GetOverride - rows error: %v", ErrScanRow, err)
		}
		return nil, ErrOverrideNotFound
	}

	return scanOverride(rows)
}

// UpsertOverride создает или обновляет оверрайд слота недели
// Уникальность по (year, week, slot_id): неделя хранит максимум один оверрайд на слот
func (r *Repository) UpsertOverride(ctx context.Context, ovr *domain.WeekOverride) (*domain.WeekOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("week_overrides").
		Columns(
			"year",
			"week",
			"slot_id",
			"walk_type",
			"sector",
			"capacity",
			"blocked",
			"blocked_reason",
			"notes",
		).
		Values(
			ovr.Year,
			ovr.Week,
			ovr.SlotID,
			ovr.WalkType,
			ovr.Sector,
			ovr.Capacity,
			ovr.Blocked,
			ovr.BlockedReason,
			ovr.Notes,
		).
		Suffix(`ON CONFLICT (year, week, slot_id) DO UPDATE SET
			walk_type = EXCLUDED.walk_type,
			sector = EXCLUDED.sector,
			capacity = EXCLUDED.capacity,
			blocked = EXCLUDED.blocked,
			blocked_reason = EXCLUDED.blocked_reason,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&ovr.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - execute upsert: %v", ErrExecQuery, err)
	}

	ovr.CreatedAt = createdAt.Time
	ovr.UpdatedAt = updatedAt.Time

	return ovr, nil
}

// DeleteOverride удаляет оверрайд слота недели (возврат к значениям шаблона)
func (r *Repository) DeleteOverride(ctx context.Context, year, week int, slotID domain.SlotID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("week_overrides").
		Where(squirrel.Eq{"year": year, "week": week, "slot_id": slotID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

func overrideColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"year",
		"week",
		"slot_id",
		"walk_type",
		"sector",
		"capacity",
		"blocked",
		"blocked_reason",
		"notes",
		"created_at",
		"updated_at",
	).From("week_overrides")
}

func scanOverride(rows *sql.Rows) (*domain.WeekOverride, error) {
	var ovr domain.WeekOverride
	var walkType, sector sql.NullString
	var capacity sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&ovr.ID,
		&ovr.Year,
		&ovr.Week,
		&ovr.SlotID,
		&walkType,
		&sector,
		&capacity,
		&ovr.Blocked,
		&ovr.BlockedReason,
		&ovr.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOverrideNotFound
		}
		return nil, fmt.Errorf("%w: scanOverride - scan row: %v", ErrScanRow, err)
	}

	if walkType.Valid {
		wt := domain.WalkType(walkType.String)
		ovr.WalkType = &wt
	}
	if sector.Valid {
		ovr.Sector = &sector.String
	}
	if capacity.Valid {
		c := int(capacity.Int64)
		ovr.Capacity = &c
	}

	ovr.CreatedAt = createdAt.Time
	ovr.UpdatedAt = updatedAt.Time

	return &ovr, nil
}

package update_override

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	slotsRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/slots"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
)

// UseCase use case изменения оверрайда слота на конкретную неделю
// Проверка последствий и запись выполняются в одной сериализуемой транзакции:
// между проверкой занятости и сохранением никто не успеет добавить собаку
type UseCase struct {
	slotsRepo      SlotsRepository
	assignmentRepo AssignmentRepository
	txManager      TransactionManager
	engine         domain.EngineConfig
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotsRepo SlotsRepository,
	assignmentRepo AssignmentRepository,
	txManager TransactionManager,
	engine domain.EngineConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotsRepo:      slotsRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		engine:         engine,
		logger:         logger,
	}
}

// Execute выполняет use case изменения оверрайда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateOverride: slot=%s, year=%d, week=%d, blocked=%t, reset=%t",
		req.SlotID, req.Year, req.Week, req.Blocked, req.Reset)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateOverride: validation failed: %v", err)
		return nil, err
	}

	weekRef := domain.WeekRef{Year: req.Year, Week: req.Week}
	resp := &Response{}

	// 2. Проверяем и сохраняем в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		templates, err := uc.slotsRepo.GetTemplates(txCtx)
		if err != nil {
			uc.logger.Error("UpdateOverride: failed to get templates: %v", err)
			return fmt.Errorf("%w: failed to get templates: %v", ErrInternal, err)
		}

		overrides, err := uc.slotsRepo.GetOverrides(txCtx, req.Year, req.Week)
		if err != nil {
			uc.logger.Error("UpdateOverride: failed to get overrides: %v", err)
			return fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
		}

		// Назначения читаются с блокировкой (FOR UPDATE)
		assignments, err := uc.assignmentRepo.GetByWeek(txCtx, req.Year, req.Week)
		if err != nil {
			uc.logger.Error("UpdateOverride: failed to get assignments: %v", err)
			return fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
		}

		// 2.1. Сброс: слот возвращается к шаблону, оверрайд удаляется
		if req.Reset {
			return uc.resetOverride(txCtx, req, weekRef, templates, overrides, assignments, resp)
		}

		view := domain.AssembleWeek(weekRef, templates, overrides, assignments, nil)

		// 2.2. Прогоняем правила последствий оверрайда
		proposed := &domain.WeekOverride{
			Year:          req.Year,
			Week:          req.Week,
			SlotID:        req.SlotID,
			WalkType:      req.WalkType,
			Sector:        req.Sector,
			Capacity:      req.Capacity,
			Blocked:       req.Blocked,
			BlockedReason: req.BlockedReason,
			Notes:         req.Notes,
		}
		report := rules.CheckOverride(uc.engine, view, proposed)
		resp.Report = report

		if report.HasViolations() {
			uc.logger.Warn("UpdateOverride: refused, %d violations for slot=%s", len(report.Violations), req.SlotID)
			return nil
		}

		// 2.3. Сохраняем оверрайд
		saved, err := uc.slotsRepo.UpsertOverride(txCtx, proposed)
		if err != nil {
			uc.logger.Error("UpdateOverride: failed to upsert override: %v", err)
			return fmt.Errorf("%w: failed to upsert override: %v", ErrInternal, err)
		}

		resp.Applied = true
		resp.Override = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.Applied {
		uc.logger.Info("UpdateOverride: successfully applied override for slot=%s %s", req.SlotID, weekRef)
	}

	return resp, nil
}

// resetOverride удаляет оверрайд, предварительно проверив, что возврат к
// шаблону не переполнит слот (емкость шаблона может быть меньше занятости)
func (uc *UseCase) resetOverride(
	ctx context.Context,
	req *Request,
	weekRef domain.WeekRef,
	templates []*domain.SlotTemplate,
	overrides []*domain.WeekOverride,
	assignments []*domain.Assignment,
	resp *Response,
) error {
	// Собираем сетку без оверрайда этого слота: так слот выглядит после сброса
	remaining := make([]*domain.WeekOverride, 0, len(overrides))
	for _, ovr := range overrides {
		if ovr.SlotID != req.SlotID {
			remaining = append(remaining, ovr)
		}
	}

	view := domain.AssembleWeek(weekRef, templates, remaining, assignments, nil)
	slot := view.Slot(req.SlotID)
	if slot == nil {
		return fmt.Errorf("%w: slot %s has no template", ErrInternal, req.SlotID)
	}

	if slot.IsOverbooked() {
		resp.Report.Violations = append(resp.Report.Violations, rules.Finding{
			Code:     rules.CodeSlotOverbooked,
			Severity: rules.SeverityViolation,
			Message: fmt.Sprintf("slot %s holds %d dogs; resetting to template capacity %d would overbook it",
				slot.SlotID, slot.Occupancy(), slot.Capacity),
			Context: map[string]interface{}{
				"groupId":           slot.SlotID.String(),
				"currentGroupCount": slot.Occupancy(),
				"maxCapacity":       slot.Capacity,
			},
			Suggestions: []string{"remove assignments first or keep the override"},
		})
		uc.logger.Warn("UpdateOverride: reset refused, slot=%s would be overbooked", req.SlotID)
		return nil
	}

	// Отсутствие оверрайда при сбросе - не ошибка: слот и так на шаблоне
	if err := uc.slotsRepo.DeleteOverride(ctx, req.Year, req.Week, req.SlotID); err != nil &&
		!errors.Is(err, slotsRepo.ErrOverrideNotFound) {
		uc.logger.Error("UpdateOverride: failed to delete override: %v", err)
		return fmt.Errorf("%w: failed to delete override: %v", ErrInternal, err)
	}

	resp.Applied = true
	return nil
}

package create_rally

import (
	"context"
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
	"github.com/m04kA/DWS-ScheduleService/pkg/ptr"
)

// UseCase use case создания похода: многочасовой прогулки на два
// последовательных блока одного дня с собственной емкостью участников
// Покрытые слоты должны быть пустыми и не заблокированными; после создания
// они блокируются оверрайдами, чтобы обычные назначения туда не попадали
type UseCase struct {
	slotsRepo      SlotsRepository
	assignmentRepo AssignmentRepository
	rallyRepo      RallyRepository
	txManager      TransactionManager
	engine         domain.EngineConfig
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotsRepo SlotsRepository,
	assignmentRepo AssignmentRepository,
	rallyRepo RallyRepository,
	txManager TransactionManager,
	engine domain.EngineConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotsRepo:      slotsRepo,
		assignmentRepo: assignmentRepo,
		rallyRepo:      rallyRepo,
		txManager:      txManager,
		engine:         engine,
		logger:         logger,
	}
}

// Execute выполняет use case создания похода
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRally: year=%d, week=%d, day=%s, startBlock=%s, dogs=%v",
		req.Year, req.Week, req.Day, req.StartBlock, req.DogIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRally: validation failed: %v", err)
		return nil, err
	}

	weekRef := domain.WeekRef{Year: req.Year, Week: req.Week}
	event := &domain.RallyEvent{
		Year:       req.Year,
		Week:       req.Week,
		Day:        req.Day,
		StartBlock: req.StartBlock,
		Capacity:   domain.RallyCapacity,
		DogIDs:     req.DogIDs,
		Notes:      req.Notes,
	}
	covered := event.Slots()

	resp := &Response{}

	// 2. Проверяем и создаем в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Материализуем сетку; назначения читаются с блокировкой (FOR UPDATE)
		view, err := uc.loadWeek(txCtx, weekRef)
		if err != nil {
			return err
		}

		// 2.2. Покрытые слоты должны быть свободны, участники - в рамках лимитов
		report := uc.checkRally(view, covered, req.DogIDs)
		resp.Report = report
		if report.HasViolations() {
			uc.logger.Warn("CreateRally: refused, %d violations", len(report.Violations))
			return nil
		}

		// 2.3. Сохраняем поход
		created, err := uc.rallyRepo.Create(txCtx, event)
		if err != nil {
			uc.logger.Error("CreateRally: failed to create rally: %v", err)
			return fmt.Errorf("%w: failed to create rally: %v", ErrInternal, err)
		}

		// 2.4. Блокируем покрытые слоты оверрайдами
		reason := fmt.Sprintf("reserved by rally #%d", created.ID)
		for _, slotID := range covered {
			_, err := uc.slotsRepo.UpsertOverride(txCtx, &domain.WeekOverride{
				Year:          req.Year,
				Week:          req.Week,
				SlotID:        slotID,
				WalkType:      ptr.Ptr(domain.WalkRally),
				Blocked:       true,
				BlockedReason: &reason,
			})
			if err != nil {
				uc.logger.Error("CreateRally: failed to block slot %s: %v", slotID, err)
				return fmt.Errorf("%w: failed to block slot %s: %v", ErrInternal, slotID, err)
			}
		}

		resp.Created = true
		resp.Rally = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.Created {
		uc.logger.Info("CreateRally: successfully created rally id=%d covering %v", resp.Rally.ID, covered)
	}

	return resp, nil
}

// checkRally проверяет бизнес-правила похода по текущему снимку недели
// Правила оцениваются независимо, отчет собирает все нарушения сразу
func (uc *UseCase) checkRally(view *domain.WeekView, covered []domain.SlotID, dogIDs []int64) rules.Report {
	var report rules.Report

	for _, slotID := range covered {
		slot := view.Slot(slotID)
		if slot == nil {
			report.Violations = append(report.Violations, rules.Finding{
				Code:     rules.CodeInvalidSlotID,
				Severity: rules.SeverityViolation,
				Message:  fmt.Sprintf("slot %s is not part of week %s", slotID, view.WeekRef),
				Context:  map[string]interface{}{"slotId": slotID.String()},
			})
			continue
		}

		if slot.Blocked {
			report.Violations = append(report.Violations, rules.Finding{
				Code:     rules.CodeSlotBlocked,
				Severity: rules.SeverityViolation,
				Message:  fmt.Sprintf("slot %s is blocked and cannot host a rally", slotID),
				Context:  map[string]interface{}{"slotId": slotID.String(), "reason": slot.BlockedReason},
			})
		}

		if slot.Occupancy() > 0 {
			report.Violations = append(report.Violations, rules.Finding{
				Code:     rules.CodeBlockedNotEmpty,
				Severity: rules.SeverityViolation,
				Message: fmt.Sprintf("slot %s still has %d assignments and cannot be reserved for a rally",
					slotID, slot.Occupancy()),
				Context: map[string]interface{}{
					"groupId":     slotID.String(),
					"assignments": slot.Occupancy(),
				},
				Suggestions: []string{"move or remove the assignments before scheduling the rally"},
			})
		}
	}

	// Поход считается одной прогулкой недели для каждого участника
	for _, dogID := range dogIDs {
		existing := view.AssignmentsOf(dogID)
		if len(existing)+1 > uc.engine.WeeklyAssignmentCap {
			report.Violations = append(report.Violations, rules.Finding{
				Code:     rules.CodeWeeklyCapExceeded,
				Severity: rules.SeverityViolation,
				Message: fmt.Sprintf("dog %d already has %d walks this week, the cap is %d",
					dogID, len(existing), uc.engine.WeeklyAssignmentCap),
				Context: map[string]interface{}{
					"dogId":     dogID,
					"assigned":  len(existing),
					"weeklyCap": uc.engine.WeeklyAssignmentCap,
				},
			})
		}
	}

	return report
}

// loadWeek материализует эффективную сетку недели внутри транзакции
func (uc *UseCase) loadWeek(ctx context.Context, weekRef domain.WeekRef) (*domain.WeekView, error) {
	templates, err := uc.slotsRepo.GetTemplates(ctx)
	if err != nil {
		uc.logger.Error("CreateRally: failed to get templates: %v", err)
		return nil, fmt.Errorf("%w: failed to get templates: %v", ErrInternal, err)
	}

	overrides, err := uc.slotsRepo.GetOverrides(ctx, weekRef.Year, weekRef.Week)
	if err != nil {
		uc.logger.Error("CreateRally: failed to get overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	assignments, err := uc.assignmentRepo.GetByWeek(ctx, weekRef.Year, weekRef.Week)
	if err != nil {
		uc.logger.Error("CreateRally: failed to get assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	return domain.AssembleWeek(weekRef, templates, overrides, assignments, nil), nil
}

package auto_assign

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	routineRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/routine"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
)

// UseCase use case автоматического назначения прогулок по рутине собаки
// Скоринг и вставки выполняются в одной сериализуемой транзакции,
// чтобы два параллельных автоназначения не заняли одно и то же место
type UseCase struct {
	slotsRepo      SlotsRepository
	assignmentRepo AssignmentRepository
	routineRepo    RoutineRepository
	txManager      TransactionManager
	engine         domain.EngineConfig
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotsRepo SlotsRepository,
	assignmentRepo AssignmentRepository,
	routineRepo RoutineRepository,
	txManager TransactionManager,
	engine domain.EngineConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotsRepo:      slotsRepo,
		assignmentRepo: assignmentRepo,
		routineRepo:    routineRepo,
		txManager:      txManager,
		engine:         engine,
		logger:         logger,
	}
}

// Execute выполняет use case автоназначения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AutoAssign: dog=%d, year=%d, week=%d", req.DogID, req.Year, req.Week)

	// 1. Валидация входных данных
	weekRef := domain.WeekRef{Year: req.Year, Week: req.Week}
	if req.DogID <= 0 {
		return nil, fmt.Errorf("%w: dog id must be positive", ErrInvalidInput)
	}
	if err := weekRef.Validate(); err != nil {
		uc.logger.Warn("AutoAssign: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Получаем рутину собаки
	routine, err := uc.routineRepo.GetByDogID(ctx, req.DogID)
	if err != nil {
		if errors.Is(err, routineRepo.ErrRoutineNotFound) {
			uc.logger.Warn("AutoAssign: dog id=%d has no routine", req.DogID)
			return nil, ErrNoRoutineConfigured
		}
		uc.logger.Error("AutoAssign: failed to get routine for dog id=%d: %v", req.DogID, err)
		return nil, fmt.Errorf("%w: failed to get routine: %v", ErrInternal, err)
	}

	// 3. Разовый тариф автоматически не назначается
	if routine.Tier.IsOnDemand() {
		uc.logger.Warn("AutoAssign: dog id=%d is on-demand tier", req.DogID)
		return nil, ErrManualAssignmentRequired
	}

	expected := uc.engine.ExpectedWeeklyWalks(routine.Tier)

	resp := &Response{
		DogID: req.DogID,
		Year:  req.Year,
		Week:  req.Week,
		Tier:  routine.Tier,
	}

	// 4. Скоринг и вставки в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Материализуем сетку недели; назначения читаются с блокировкой (FOR UPDATE)
		view, err := uc.loadWeek(txCtx, weekRef)
		if err != nil {
			return err
		}

		// 4.2. Квота считается от уже назначенного: повторный запуск идемпотентен
		existing := view.AssignmentsOf(req.DogID)
		resp.AlreadyAssigned = len(existing)
		resp.Required = expected - len(existing)
		if resp.Required <= 0 {
			resp.Required = 0
			resp.Satisfied = true
			uc.logger.Info("AutoAssign: dog=%d already has %d/%d walks, nothing to do",
				req.DogID, len(existing), expected)
			return nil
		}

		// 4.3. Отбираем и ранжируем кандидатов
		candidates := rankCandidates(view, routine, req.DogID)
		if len(candidates) == 0 {
			uc.logger.Warn("AutoAssign: no candidate slots for dog=%d in %s", req.DogID, weekRef)
			return ErrNoAvailableSlots
		}

		// Дни уже существующих назначений считаются занятыми для распределения
		usedDays := make(map[domain.Weekday]bool)
		for _, a := range existing {
			usedDays[a.SlotID.Day()] = true
		}

		// 4.4. Жадный выбор: лучший скор, по возможности разные дни
		// Каждый выбор перепроверяется полным валидатором перед вставкой
		picked := make([]bool, len(candidates))
		for resp.Filled < resp.Required {
			idx := pickNext(candidates, picked, usedDays)
			if idx < 0 {
				break
			}
			picked[idx] = true

			slot := candidates[idx].slot
			report := rules.CheckAssignment(uc.engine, view, rules.ProposedAssignment{
				DogID:   req.DogID,
				SlotID:  slot.SlotID,
				Routine: routine,
			})
			if report.HasViolations() {
				uc.logger.Warn("AutoAssign: candidate %s rejected by validator (%d violations)",
					slot.SlotID, len(report.Violations))
				continue
			}

			created, err := uc.assignmentRepo.Create(txCtx, &domain.Assignment{
				DogID:     req.DogID,
				SlotID:    slot.SlotID,
				Year:      req.Year,
				Week:      req.Week,
				Confirmed: true,
			})
			if err != nil {
				uc.logger.Error("AutoAssign: failed to create assignment in %s: %v", slot.SlotID, err)
				return fmt.Errorf("%w: failed to create assignment: %v", ErrInternal, err)
			}

			// Отражаем вставку в материализованной сетке для следующих проверок
			slot.Assignments = append(slot.Assignments, domain.AssignmentView{Assignment: *created})
			usedDays[slot.Day] = true
			resp.Filled++
			resp.SlotIDs = append(resp.SlotIDs, slot.SlotID)
		}

		// Квота не закрыта и добавить нечего
		if resp.Filled == 0 {
			return ErrNoAvailableSlots
		}

		resp.Satisfied = resp.AlreadyAssigned+resp.Filled >= expected
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("AutoAssign: dog=%d filled %d/%d slots: %v",
		req.DogID, resp.Filled, resp.Required, resp.SlotIDs)

	return resp, nil
}

// loadWeek материализует эффективную сетку недели внутри транзакции
func (uc *UseCase) loadWeek(ctx context.Context, weekRef domain.WeekRef) (*domain.WeekView, error) {
	templates, err := uc.slotsRepo.GetTemplates(ctx)
	if err != nil {
		uc.logger.Error("AutoAssign: failed to get templates: %v", err)
		return nil, fmt.Errorf("%w: failed to get templates: %v", ErrInternal, err)
	}

	overrides, err := uc.slotsRepo.GetOverrides(ctx, weekRef.Year, weekRef.Week)
	if err != nil {
		uc.logger.Error("AutoAssign: failed to get overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	assignments, err := uc.assignmentRepo.GetByWeek(ctx, weekRef.Year, weekRef.Week)
	if err != nil {
		uc.logger.Error("AutoAssign: failed to get assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	return domain.AssembleWeek(weekRef, templates, overrides, assignments, nil), nil
}

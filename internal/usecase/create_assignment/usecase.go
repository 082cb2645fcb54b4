package create_assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	assignmentRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/assignment"
	routineRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/routine"
	petClient "github.com/m04kA/DWS-ScheduleService/internal/integrations/petservice"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
)

// UseCase use case для создания назначения собаки в слот
// Валидатор является авторитетным гейтом: проверка и вставка выполняются
// в одной сериализуемой транзакции, чтобы исключить гонку на последнее место
type UseCase struct {
	slotsRepo      SlotsRepository
	assignmentRepo AssignmentRepository
	routineRepo    RoutineRepository
	petClient      PetServiceClient
	txManager      TransactionManager
	engine         domain.EngineConfig
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotsRepo SlotsRepository,
	assignmentRepo AssignmentRepository,
	routineRepo RoutineRepository,
	petClient PetServiceClient,
	txManager TransactionManager,
	engine domain.EngineConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotsRepo:      slotsRepo,
		assignmentRepo: assignmentRepo,
		routineRepo:    routineRepo,
		petClient:      petClient,
		txManager:      txManager,
		engine:         engine,
		logger:         logger,
	}
}

// Execute выполняет use case создания назначения
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAssignment: dog=%d, slot=%s, year=%d, week=%d",
		req.DogID, req.SlotID, req.Year, req.Week)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAssignment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование собаки в PetService
	if _, err := uc.petClient.GetDog(ctx, req.DogID); err != nil {
		if errors.Is(err, petClient.ErrDogNotFound) {
			uc.logger.Warn("CreateAssignment: dog id=%d not found", req.DogID)
			return nil, ErrDogNotFound
		}
		uc.logger.Error("CreateAssignment: failed to get dog id=%d: %v", req.DogID, err)
		return nil, fmt.Errorf("%w: failed to get dog: %v", ErrInternal, err)
	}

	// 3. Получаем рутину собаки (может отсутствовать - это не ошибка)
	routine, err := uc.routineRepo.GetByDogID(ctx, req.DogID)
	if err != nil && !errors.Is(err, routineRepo.ErrRoutineNotFound) {
		uc.logger.Error("CreateAssignment: failed to get routine for dog id=%d: %v", req.DogID, err)
		return nil, fmt.Errorf("%w: failed to get routine: %v", ErrInternal, err)
	}

	weekRef := domain.WeekRef{Year: req.Year, Week: req.Week}
	resp := &Response{}

	// 4. Проверяем правила и вставляем в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Материализуем сетку недели; назначения читаются с блокировкой (FOR UPDATE)
		view, err := uc.loadWeek(txCtx, weekRef)
		if err != nil {
			return err
		}

		// 4.2. Прогоняем полный набор правил
		report := rules.CheckAssignment(uc.engine, view, rules.ProposedAssignment{
			DogID:   req.DogID,
			SlotID:  req.SlotID,
			Routine: routine,
		})
		resp.Report = report

		// Нарушения - это данные для клиента, а не внутренняя ошибка
		if report.HasViolations() {
			uc.logger.Warn("CreateAssignment: refused, %d violations for dog=%d slot=%s",
				len(report.Violations), req.DogID, req.SlotID)
			return nil
		}

		// 4.3. Сохраняем назначение
		created, err := uc.assignmentRepo.Create(txCtx, &domain.Assignment{
			DogID:         req.DogID,
			SlotID:        req.SlotID,
			Year:          req.Year,
			Week:          req.Week,
			Confirmed:     req.Confirmed,
			OverridePrice: req.OverridePrice,
			Notes:         req.Notes,
		})
		if err != nil {
			// Уникальный индекс - последняя линия обороны от гонки двух операторов
			if errors.Is(err, assignmentRepo.ErrDuplicateAssignment) {
				uc.logger.Warn("CreateAssignment: duplicate (dog=%d, slot=%s) lost the race", req.DogID, req.SlotID)
				resp.Report.Violations = append(resp.Report.Violations, rules.Finding{
					Code:     rules.CodeDogAlreadyInGroup,
					Severity: rules.SeverityViolation,
					Message:  fmt.Sprintf("dog %d is already assigned to slot %s", req.DogID, req.SlotID),
					Context: map[string]interface{}{
						"dogId":  req.DogID,
						"slotId": req.SlotID.String(),
					},
				})
				return nil
			}
			uc.logger.Error("CreateAssignment: failed to create assignment: %v", err)
			return fmt.Errorf("%w: failed to create assignment: %v", ErrInternal, err)
		}

		resp.Created = true
		resp.Assignment = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.Created {
		uc.logger.Info("CreateAssignment: successfully created assignment id=%d", resp.Assignment.ID)
	}

	return resp, nil
}

// loadWeek материализует эффективную сетку недели внутри транзакции
func (uc *UseCase) loadWeek(ctx context.Context, weekRef domain.WeekRef) (*domain.WeekView, error) {
	templates, err := uc.slotsRepo.GetTemplates(ctx)
	if err != nil {
		uc.logger.Error("CreateAssignment: failed to get templates: %v", err)
		return nil, fmt.Errorf("%w: failed to get templates: %v", ErrInternal, err)
	}

	overrides, err := uc.slotsRepo.GetOverrides(ctx, weekRef.Year, weekRef.Week)
	if err != nil {
		uc.logger.Error("CreateAssignment: failed to get overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	assignments, err := uc.assignmentRepo.GetByWeek(ctx, weekRef.Year, weekRef.Week)
	if err != nil {
		uc.logger.Error("CreateAssignment: failed to get assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	return domain.AssembleWeek(weekRef, templates, overrides, assignments, nil), nil
}

package analyze_week

import (
	"context"
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
)

// UseCase use case аналитики недели: загрузка, распределение по секторам и
// дням, квоты рутин и полный прогон правил по текущему снимку
// Чтение без транзакции: аналитика не обязана быть точной к моменту ответа
type UseCase struct {
	slotsRepo      SlotsRepository
	assignmentRepo AssignmentRepository
	routineRepo    RoutineRepository
	engine         domain.EngineConfig
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotsRepo SlotsRepository,
	assignmentRepo AssignmentRepository,
	routineRepo RoutineRepository,
	engine domain.EngineConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotsRepo:      slotsRepo,
		assignmentRepo: assignmentRepo,
		routineRepo:    routineRepo,
		engine:         engine,
		logger:         logger,
	}
}

// Execute выполняет use case анализа недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AnalyzeWeek: year=%d, week=%d", req.Year, req.Week)

	// 1. Валидация входных данных
	weekRef := domain.WeekRef{Year: req.Year, Week: req.Week}
	if err := weekRef.Validate(); err != nil {
		uc.logger.Warn("AnalyzeWeek: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Загружаем снимок недели
	templates, err := uc.slotsRepo.GetTemplates(ctx)
	if err != nil {
		uc.logger.Error("AnalyzeWeek: failed to get templates: %v", err)
		return nil, fmt.Errorf("%w: failed to get templates: %v", ErrInternal, err)
	}

	overrides, err := uc.slotsRepo.GetOverrides(ctx, req.Year, req.Week)
	if err != nil {
		uc.logger.Error("AnalyzeWeek: failed to get overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	assignments, err := uc.assignmentRepo.GetByWeek(ctx, req.Year, req.Week)
	if err != nil {
		uc.logger.Error("AnalyzeWeek: failed to get assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	// 3. Загружаем рутины всех собак недели одним батчем
	routines, err := uc.loadRoutines(ctx, assignments)
	if err != nil {
		return nil, err
	}

	// 4. Считаем аналитику и прогоняем правила по снимку
	view := domain.AssembleWeek(weekRef, templates, overrides, assignments, nil)
	analysis := rules.AnalyzeWeek(uc.engine, view, routines)
	health := rules.CheckWeek(uc.engine, view)

	uc.logger.Info("AnalyzeWeek: %s utilization=%.1f%%, violations=%d, warnings=%d",
		weekRef, analysis.UtilizationPercent, len(health.Violations), len(health.Warnings))

	return &Response{
		Year:     req.Year,
		Week:     req.Week,
		Analysis: analysis,
		Health:   health,
	}, nil
}

// loadRoutines загружает рутины всех собак, встречающихся в назначениях недели
func (uc *UseCase) loadRoutines(ctx context.Context, assignments []*domain.Assignment) (map[int64]*domain.DogRoutine, error) {
	if len(assignments) == 0 {
		return nil, nil
	}

	dogIDs := make([]int64, 0, len(assignments))
	seen := make(map[int64]bool, len(assignments))
	for _, a := range assignments {
		if !seen[a.DogID] {
			seen[a.DogID] = true
			dogIDs = append(dogIDs, a.DogID)
		}
	}

	routines, err := uc.routineRepo.GetByDogIDs(ctx, dogIDs)
	if err != nil {
		uc.logger.Error("AnalyzeWeek: failed to get routines: %v", err)
		return nil, fmt.Errorf("%w: failed to get routines: %v", ErrInternal, err)
	}

	return routines, nil
}

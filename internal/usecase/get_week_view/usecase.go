package get_week_view

import (
	"context"
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// UseCase use case получения материализованной сетки недели
// Это агрегатор, которым пользуются все остальные компоненты: шаблоны слотов,
// оверрайды недели и назначения сливаются в 15 эффективных слотов
type UseCase struct {
	slotsRepo      SlotsRepository
	assignmentRepo AssignmentRepository
	petClient      PetServiceClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotsRepo SlotsRepository,
	assignmentRepo AssignmentRepository,
	petClient PetServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotsRepo:      slotsRepo,
		assignmentRepo: assignmentRepo,
		petClient:      petClient,
		logger:         logger,
	}
}

// Execute выполняет use case получения сетки недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekView: year=%d, week=%d", req.Year, req.Week)

	// 1. Валидация входных данных
	weekRef := domain.WeekRef{Year: req.Year, Week: req.Week}
	if err := weekRef.Validate(); err != nil {
		uc.logger.Warn("GetWeekView: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Получаем шаблоны всех 15 слотов
	templates, err := uc.slotsRepo.GetTemplates(ctx)
	if err != nil {
		uc.logger.Error("GetWeekView: failed to get templates: %v", err)
		return nil, fmt.Errorf("%w: failed to get templates: %v", ErrInternal, err)
	}

	// 3. Получаем оверрайды недели
	overrides, err := uc.slotsRepo.GetOverrides(ctx, req.Year, req.Week)
	if err != nil {
		uc.logger.Error("GetWeekView: failed to get overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	// 4. Получаем назначения недели
	assignments, err := uc.assignmentRepo.GetByWeek(ctx, req.Year, req.Week)
	if err != nil {
		uc.logger.Error("GetWeekView: failed to get assignments: %v", err)
		return nil, fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
	}

	// 5. Получаем данные собак одним батчем (fail-closed: без них сетку не отдаем)
	dogs, err := uc.fetchDogDisplays(ctx, assignments)
	if err != nil {
		return nil, err
	}

	// 6. Собираем эффективные слоты
	view := domain.AssembleWeek(weekRef, templates, overrides, assignments, dogs)

	uc.logger.Info("GetWeekView: assembled %d slots with %d assignments for %s",
		len(view.Slots), len(assignments), weekRef)

	return &Response{
		Year:   req.Year,
		Week:   req.Week,
		Monday: weekRef.Monday(),
		Slots:  view.Slots,
	}, nil
}

// fetchDogDisplays загружает отображаемые данные всех собак недели из PetService
func (uc *UseCase) fetchDogDisplays(ctx context.Context, assignments []*domain.Assignment) (map[int64]domain.DogDisplay, error) {
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

	dogs, err := uc.petClient.GetDogs(ctx, dogIDs)
	if err != nil {
		uc.logger.Error("GetWeekView: failed to get dogs from PetService: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDogDataUnavailable, err)
	}

	displays := make(map[int64]domain.DogDisplay, len(dogs))
	for id, dog := range dogs {
		displays[id] = domain.DogDisplay{
			DogID:     dog.ID,
			Name:      dog.Name,
			OwnerName: dog.OwnerName,
			Sector:    dog.Sector,
		}
	}

	// Собака могла быть удалена из PetService после назначения
	for _, id := range dogIDs {
		if _, ok := displays[id]; !ok {
			uc.logger.Error("GetWeekView: dog id=%d is assigned but missing in PetService", id)
			return nil, fmt.Errorf("%w: dog id=%d not found", ErrDogDataUnavailable, id)
		}
	}

	return displays, nil
}

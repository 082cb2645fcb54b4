package routines

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	routineRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/routine"
	petClient "github.com/m04kA/DWS-ScheduleService/internal/integrations/petservice"
	"github.com/m04kA/DWS-ScheduleService/internal/service/routines/models"
)

// Service сервис для работы с рутинами собак
type Service struct {
	routineRepo RoutineRepository
	petClient   PetServiceClient
	engine      domain.EngineConfig
	logger      Logger
}

// NewService создает новый экземпляр сервиса рутин
func NewService(
	routineRepo RoutineRepository,
	petClient PetServiceClient,
	engine domain.EngineConfig,
	logger Logger,
) *Service {
	return &Service{
		routineRepo: routineRepo,
		petClient:   petClient,
		engine:      engine,
		logger:      logger,
	}
}

// Upsert создает или заменяет рутину собаки
// У собаки не больше одной рутины; повторный вызов перезаписывает профиль
func (s *Service) Upsert(ctx context.Context, req *models.UpsertRoutineRequest) (*models.RoutineResponse, error) {
	s.logger.Info("Upsert: dog=%d, tier=%s", req.DogID, req.Tier)

	if req.DogID <= 0 {
		return nil, fmt.Errorf("%w: dog id must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	routine, err := req.ToDomainRoutine()
	if err != nil {
		s.logger.Warn("Upsert: invalid routine for dog=%d: %v", req.DogID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Собака должна существовать в PetService
	if _, err := s.petClient.GetDog(ctx, req.DogID); err != nil {
		if errors.Is(err, petClient.ErrDogNotFound) {
			s.logger.Warn("Upsert: dog id=%d not found", req.DogID)
			return nil, ErrDogNotFound
		}
		s.logger.Error("Upsert: failed to get dog id=%d: %v", req.DogID, err)
		return nil, fmt.Errorf("%w: Upsert - failed to get dog: %v", ErrInternal, err)
	}

	saved, err := s.routineRepo.Upsert(ctx, routine)
	if err != nil {
		s.logger.Error("Upsert: repository error for dog=%d: %v", req.DogID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved routine id=%d for dog=%d", saved.ID, saved.DogID)
	return models.FromDomainRoutine(saved, s.engine.ExpectedWeeklyWalks(saved.Tier)), nil
}

// Get возвращает рутину собаки
func (s *Service) Get(ctx context.Context, dogID int64) (*models.RoutineResponse, error) {
	s.logger.Info("Get: fetching routine for dog=%d", dogID)

	if dogID <= 0 {
		return nil, fmt.Errorf("%w: dog id must be positive", ErrInvalidInput)
	}

	routine, err := s.routineRepo.GetByDogID(ctx, dogID)
	if err != nil {
		if errors.Is(err, routineRepo.ErrRoutineNotFound) {
			s.logger.Warn("Get: routine for dog=%d not found", dogID)
			return nil, ErrRoutineNotFound
		}
		s.logger.Error("Get: repository error for dog=%d: %v", dogID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoutine(routine, s.engine.ExpectedWeeklyWalks(routine.Tier)), nil
}

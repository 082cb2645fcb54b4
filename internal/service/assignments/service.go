package assignments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	assignmentRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/assignment"
	"github.com/m04kA/DWS-ScheduleService/internal/service/assignments/models"
)

// Service сервис для работы с назначениями
type Service struct {
	assignmentRepo AssignmentRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса назначений
func NewService(assignmentRepo AssignmentRepository, logger Logger) *Service {
	return &Service{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// GetByID возвращает назначение по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AssignmentResponse, error) {
	s.logger.Info("GetByID: fetching assignment id=%d", id)

	a, err := s.getAssignment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAssignment(a), nil
}

// GetByDogAndWeek возвращает назначения собаки на неделю
func (s *Service) GetByDogAndWeek(ctx context.Context, dogID int64, year, week int) (*models.AssignmentListResponse, error) {
	s.logger.Info("GetByDogAndWeek: dog=%d, year=%d, week=%d", dogID, year, week)

	if dogID <= 0 {
		return nil, fmt.Errorf("%w: dog id must be positive", ErrInvalidInput)
	}

	weekRef := domain.WeekRef{Year: year, Week: week}
	if err := weekRef.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.assignmentRepo.GetByDogAndWeek(ctx, dogID, year, week)
	if err != nil {
		s.logger.Error("GetByDogAndWeek: repository error for dog=%d: %v", dogID, err)
		return nil, fmt.Errorf("%w: GetByDogAndWeek - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAssignmentList(list), nil
}

// Remove удаляет незавершенное назначение
// Завершенные прогулки неизменяемы: по ним уже могла уйти строка в биллинг
func (s *Service) Remove(ctx context.Context, id int64) error {
	s.logger.Info("Remove: removing assignment id=%d", id)

	a, err := s.getAssignment(ctx, "Remove", id)
	if err != nil {
		return err
	}

	if a.Completed {
		s.logger.Warn("Remove: assignment id=%d is completed and immutable", id)
		return ErrCompletedImmutable
	}

	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			return ErrAssignmentNotFound
		}
		s.logger.Error("Remove: repository error for assignment id=%d: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: successfully removed assignment id=%d", id)
	return nil
}

func (s *Service) getAssignment(ctx context.Context, op string, id int64) (*domain.Assignment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: assignment id must be positive", ErrInvalidInput)
	}

	a, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Warn("%s: assignment id=%d not found", op, id)
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("%s: repository error for assignment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return a, nil
}

package complete_assignment

import (
	"context"
	"errors"
	"fmt"

	assignmentRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/assignment"
)

// UseCase use case завершения прогулки
// Флаг завершения переключается ровно один раз (UPDATE с WHERE completed=false),
// после чего запускается синхронизация биллинга. Ошибка синхронизации не
// откатывает завершение: мост идемпотентен и строка доедет при следующем батче
type UseCase struct {
	assignmentRepo AssignmentRepository
	billingSyncer  BillingSyncer
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	billingSyncer BillingSyncer,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		billingSyncer:  billingSyncer,
		logger:         logger,
	}
}

// Execute выполняет use case завершения прогулки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteAssignment: assignment id=%d", req.AssignmentID)

	// 1. Валидация входных данных
	if req.AssignmentID <= 0 {
		return nil, fmt.Errorf("%w: assignment id must be positive", ErrInvalidInput)
	}

	// 2. Переключаем флаг завершения
	if err := uc.assignmentRepo.SetCompleted(ctx, req.AssignmentID); err != nil {
		switch {
		case errors.Is(err, assignmentRepo.ErrAssignmentNotFound):
			uc.logger.Warn("CompleteAssignment: assignment id=%d not found", req.AssignmentID)
			return nil, ErrAssignmentNotFound
		case errors.Is(err, assignmentRepo.ErrAlreadyCompleted):
			uc.logger.Warn("CompleteAssignment: assignment id=%d already completed", req.AssignmentID)
			return nil, ErrAlreadyCompleted
		default:
			uc.logger.Error("CompleteAssignment: failed to set completed: %v", err)
			return nil, fmt.Errorf("%w: failed to set completed: %v", ErrInternal, err)
		}
	}

	// 3. Перечитываем назначение с выставленным флагом
	a, err := uc.assignmentRepo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		uc.logger.Error("CompleteAssignment: failed to reload assignment id=%d: %v", req.AssignmentID, err)
		return nil, fmt.Errorf("%w: failed to reload assignment: %v", ErrInternal, err)
	}

	resp := &Response{Assignment: a}

	// 4. Запускаем синхронизацию биллинга
	sync, err := uc.billingSyncer.SyncOne(ctx, req.AssignmentID)
	if err != nil {
		uc.logger.Error("CompleteAssignment: billing sync failed for assignment id=%d: %v", req.AssignmentID, err)
		msg := err.Error()
		resp.SyncError = &msg
		return resp, nil
	}
	resp.Sync = sync

	uc.logger.Info("CompleteAssignment: assignment id=%d completed, billing record created=%t",
		req.AssignmentID, sync.Created)

	return resp, nil
}

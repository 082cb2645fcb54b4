package complete_assignment

import (
	"context"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	syncModels "github.com/m04kA/DWS-ScheduleService/internal/service/billingsync/models"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	SetCompleted(ctx context.Context, id int64) error
}

// BillingSyncer интерфейс моста синхронизации биллинга
type BillingSyncer interface {
	SyncOne(ctx context.Context, assignmentID int64) (*syncModels.SyncResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

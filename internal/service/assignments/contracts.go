package assignments

import (
	"context"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	GetByDogAndWeek(ctx context.Context, dogID int64, year, week int) ([]*domain.Assignment, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

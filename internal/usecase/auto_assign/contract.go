package auto_assign

import (
	"context"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// SlotsRepository интерфейс репозитория шаблонов и оверрайдов слотов
type SlotsRepository interface {
	GetTemplates(ctx context.Context) ([]*domain.SlotTemplate, error)
	GetOverrides(ctx context.Context, year, week int) ([]*domain.WeekOverride, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByWeek(ctx context.Context, year, week int) ([]*domain.Assignment, error)
	Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error)
}

// RoutineRepository интерфейс репозитория рутин собак
type RoutineRepository interface {
	GetByDogID(ctx context.Context, dogID int64) (*domain.DogRoutine, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

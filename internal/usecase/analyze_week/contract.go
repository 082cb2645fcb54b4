package analyze_week

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
}

// RoutineRepository интерфейс репозитория рутин собак
type RoutineRepository interface {
	GetByDogIDs(ctx context.Context, dogIDs []int64) (map[int64]*domain.DogRoutine, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_rally

import (
	"context"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// SlotsRepository интерфейс репозитория шаблонов и оверрайдов слотов
type SlotsRepository interface {
	GetTemplates(ctx context.Context) ([]*domain.SlotTemplate, error)
	GetOverrides(ctx context.Context, year, week int) ([]*domain.WeekOverride, error)
	UpsertOverride(ctx context.Context, ovr *domain.WeekOverride) (*domain.WeekOverride, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByWeek(ctx context.Context, year, week int) ([]*domain.Assignment, error)
}

// RallyRepository интерфейс репозитория походов
type RallyRepository interface {
	Create(ctx context.Context, event *domain.RallyEvent) (*domain.RallyEvent, error)
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

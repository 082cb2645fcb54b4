package billingsync

import (
	"context"
	"time"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/internal/integrations/petservice"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	GetCompletedByWeek(ctx context.Context, year, week int) ([]*domain.Assignment, error)
}

// SlotsRepository интерфейс репозитория шаблонов и оверрайдов слотов
type SlotsRepository interface {
	GetTemplates(ctx context.Context) ([]*domain.SlotTemplate, error)
	GetOverrides(ctx context.Context, year, week int) ([]*domain.WeekOverride, error)
}

// BillingRepository интерфейс репозитория строк биллинга
type BillingRepository interface {
	FindByKey(ctx context.Context, key domain.BillingKey) (*domain.BillableRecord, error)
	Insert(ctx context.Context, record *domain.BillableRecord) (*domain.BillableRecord, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.BillableRecord, error)
}

// PetServiceClient интерфейс клиента для PetService
type PetServiceClient interface {
	GetDog(ctx context.Context, dogID int64) (*petservice.Dog, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

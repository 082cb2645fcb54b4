package routines

import (
	"context"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/internal/integrations/petservice"
)

// RoutineRepository интерфейс репозитория рутин собак
type RoutineRepository interface {
	Upsert(ctx context.Context, routine *domain.DogRoutine) (*domain.DogRoutine, error)
	GetByDogID(ctx context.Context, dogID int64) (*domain.DogRoutine, error)
}

// PetServiceClient интерфейс клиента для PetService
type PetServiceClient interface {
	GetDog(ctx context.Context, dogID int64) (*petservice.Dog, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

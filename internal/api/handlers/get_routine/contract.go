package get_routine

import (
	"context"

	"github.com/m04kA/DWS-ScheduleService/internal/service/routines/models"
)

type RoutinesService interface {
	Get(ctx context.Context, dogID int64) (*models.RoutineResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

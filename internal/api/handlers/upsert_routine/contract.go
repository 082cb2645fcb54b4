package upsert_routine

import (
	"context"

	"github.com/m04kA/DWS-ScheduleService/internal/service/routines/models"
)

type RoutinesService interface {
	Upsert(ctx context.Context, req *models.UpsertRoutineRequest) (*models.RoutineResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_rally

import (
	"context"

	createRally "github.com/m04kA/DWS-ScheduleService/internal/usecase/create_rally"
)

type CreateRallyUseCase interface {
	Execute(ctx context.Context, req *createRally.Request) (*createRally.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

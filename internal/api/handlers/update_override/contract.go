package update_override

import (
	"context"

	updateOverride "github.com/m04kA/DWS-ScheduleService/internal/usecase/update_override"
)

type UpdateOverrideUseCase interface {
	Execute(ctx context.Context, req *updateOverride.Request) (*updateOverride.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

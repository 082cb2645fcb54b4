package auto_assign

import (
	"context"

	autoAssign "github.com/m04kA/DWS-ScheduleService/internal/usecase/auto_assign"
)

type AutoAssignUseCase interface {
	Execute(ctx context.Context, req *autoAssign.Request) (*autoAssign.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

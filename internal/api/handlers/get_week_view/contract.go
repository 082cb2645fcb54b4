package get_week_view

import (
	"context"

	getWeekView "github.com/m04kA/DWS-ScheduleService/internal/usecase/get_week_view"
)

type GetWeekViewUseCase interface {
	Execute(ctx context.Context, req *getWeekView.Request) (*getWeekView.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package analyze_week

import (
	"context"

	analyzeWeek "github.com/m04kA/DWS-ScheduleService/internal/usecase/analyze_week"
)

type AnalyzeWeekUseCase interface {
	Execute(ctx context.Context, req *analyzeWeek.Request) (*analyzeWeek.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

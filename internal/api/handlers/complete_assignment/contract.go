package complete_assignment

import (
	"context"

	completeAssignment "github.com/m04kA/DWS-ScheduleService/internal/usecase/complete_assignment"
)

type CompleteAssignmentUseCase interface {
	Execute(ctx context.Context, req *completeAssignment.Request) (*completeAssignment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

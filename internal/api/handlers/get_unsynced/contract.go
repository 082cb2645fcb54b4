package get_unsynced

import (
	"context"

	"github.com/m04kA/DWS-ScheduleService/internal/service/billingsync/models"
)

type BillingSyncService interface {
	FindUnsynced(ctx context.Context, year, week int) (*models.UnsyncedResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

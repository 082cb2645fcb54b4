package sync_week

import (
	"context"

	"github.com/m04kA/DWS-ScheduleService/internal/service/billingsync/models"
)

type BillingSyncService interface {
	SyncWeek(ctx context.Context, year, week int) (*models.WeekSyncResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

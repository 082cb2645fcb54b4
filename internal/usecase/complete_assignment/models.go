package complete_assignment

import (
	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	syncModels "github.com/m04kA/DWS-ScheduleService/internal/service/billingsync/models"
)

// Request модель запроса на завершение прогулки
type Request struct {
	AssignmentID int64
}

// Response модель ответа с завершенным назначением и результатом синхронизации
// SyncError заполняется, когда прогулка завершена, но синхронизация не удалась:
// завершение не откатывается, строка доедет при следующем батче
type Response struct {
	Assignment *domain.Assignment     `json:"assignment"`
	Sync       *syncModels.SyncResult `json:"sync,omitempty"`
	SyncError  *string                `json:"syncError,omitempty"`
}

package complete_assignment

import (
	"github.com/m04kA/DWS-ScheduleService/internal/service/assignments/models"
	syncModels "github.com/m04kA/DWS-ScheduleService/internal/service/billingsync/models"
	completeAssignment "github.com/m04kA/DWS-ScheduleService/internal/usecase/complete_assignment"
)

// CompleteAssignmentResponse HTTP response model
type CompleteAssignmentResponse struct {
	Assignment *models.AssignmentResponse `json:"assignment"`
	Sync       *syncModels.SyncResult     `json:"sync,omitempty"`
	SyncError  *string                    `json:"syncError,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *completeAssignment.Response) *CompleteAssignmentResponse {
	return &CompleteAssignmentResponse{
		Assignment: models.FromDomainAssignment(result.Assignment),
		Sync:       result.Sync,
		SyncError:  result.SyncError,
	}
}

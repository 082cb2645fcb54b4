package create_assignment

import (
	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
	"github.com/m04kA/DWS-ScheduleService/internal/service/assignments/models"
	createAssignment "github.com/m04kA/DWS-ScheduleService/internal/usecase/create_assignment"
)

// CreateAssignmentRequest HTTP request model
type CreateAssignmentRequest struct {
	DogID         int64    `json:"dogId"`
	SlotID        string   `json:"slotId"` // "MA-B2"
	Year          int      `json:"year"`
	Week          int      `json:"week"`
	Confirmed     bool     `json:"confirmed"`
	OverridePrice *float64 `json:"overridePrice,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAssignmentRequest) ToUseCaseRequest() (*createAssignment.Request, error) {
	slotID, err := domain.ParseSlotID(r.SlotID)
	if err != nil {
		return nil, err
	}

	return &createAssignment.Request{
		DogID:         r.DogID,
		SlotID:        slotID,
		Year:          r.Year,
		Week:          r.Week,
		Confirmed:     r.Confirmed,
		OverridePrice: r.OverridePrice,
		Notes:         r.Notes,
	}, nil
}

// CreateAssignmentResponse HTTP response model
type CreateAssignmentResponse struct {
	Created    bool                       `json:"created"`
	Assignment *models.AssignmentResponse `json:"assignment,omitempty"`
	Report     rules.Report               `json:"report"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *createAssignment.Response) *CreateAssignmentResponse {
	resp := &CreateAssignmentResponse{
		Created: result.Created,
		Report:  result.Report,
	}
	if result.Assignment != nil {
		resp.Assignment = models.FromDomainAssignment(result.Assignment)
	}
	return resp
}

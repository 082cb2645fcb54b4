package models

import (
	"time"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// AssignmentResponse назначение в ответе API
type AssignmentResponse struct {
	ID            int64      `json:"id"`
	DogID         int64      `json:"dogId"`
	SlotID        string     `json:"slotId"`
	Year          int        `json:"year"`
	Week          int        `json:"week"`
	Confirmed     bool       `json:"confirmed"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	OverridePrice *float64   `json:"overridePrice,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// FromDomainAssignment конвертирует domain модель в response
func FromDomainAssignment(a *domain.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:            a.ID,
		DogID:         a.DogID,
		SlotID:        a.SlotID.String(),
		Year:          a.Year,
		Week:          a.Week,
		Confirmed:     a.Confirmed,
		Completed:     a.Completed,
		CompletedAt:   a.CompletedAt,
		OverridePrice: a.OverridePrice,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// AssignmentListResponse список назначений
type AssignmentListResponse struct {
	Assignments []*AssignmentResponse `json:"assignments"`
}

// FromDomainAssignmentList конвертирует список domain моделей в response
func FromDomainAssignmentList(list []*domain.Assignment) *AssignmentListResponse {
	out := make([]*AssignmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromDomainAssignment(a))
	}
	return &AssignmentListResponse{Assignments: out}
}

package auto_assign

import (
	autoAssign "github.com/m04kA/DWS-ScheduleService/internal/usecase/auto_assign"
)

// AutoAssignRequest HTTP request model
type AutoAssignRequest struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

// AutoAssignResponse HTTP response model
type AutoAssignResponse struct {
	DogID           int64    `json:"dogId"`
	Year            int      `json:"year"`
	Week            int      `json:"week"`
	Tier            string   `json:"tier"`
	AlreadyAssigned int      `json:"alreadyAssigned"`
	Required        int      `json:"required"`
	Filled          int      `json:"filled"`
	Satisfied       bool     `json:"satisfied"`
	SlotIDs         []string `json:"slotIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *autoAssign.Response) *AutoAssignResponse {
	slotIDs := make([]string, 0, len(result.SlotIDs))
	for _, id := range result.SlotIDs {
		slotIDs = append(slotIDs, id.String())
	}

	return &AutoAssignResponse{
		DogID:           result.DogID,
		Year:            result.Year,
		Week:            result.Week,
		Tier:            string(result.Tier),
		AlreadyAssigned: result.AlreadyAssigned,
		Required:        result.Required,
		Filled:          result.Filled,
		Satisfied:       result.Satisfied,
		SlotIDs:         slotIDs,
	}
}

package update_override

import (
	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
	updateOverride "github.com/m04kA/DWS-ScheduleService/internal/usecase/update_override"
)

// UpdateOverrideRequest HTTP request model
// nil-поле означает "оставить значение шаблона"
type UpdateOverrideRequest struct {
	WalkType      *string `json:"walkType,omitempty"`
	Sector        *string `json:"sector,omitempty"`
	Capacity      *int    `json:"capacity,omitempty"`
	Blocked       bool    `json:"blocked"`
	BlockedReason *string `json:"blockedReason,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Reset         bool    `json:"reset,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateOverrideRequest) ToUseCaseRequest(year, week int, slotID domain.SlotID) *updateOverride.Request {
	var walkType *domain.WalkType
	if r.WalkType != nil {
		wt := domain.WalkType(*r.WalkType)
		walkType = &wt
	}

	return &updateOverride.Request{
		Year:          year,
		Week:          week,
		SlotID:        slotID,
		WalkType:      walkType,
		Sector:        r.Sector,
		Capacity:      r.Capacity,
		Blocked:       r.Blocked,
		BlockedReason: r.BlockedReason,
		Notes:         r.Notes,
		Reset:         r.Reset,
	}
}

// OverrideView оверрайд в ответе API
type OverrideView struct {
	ID            int64   `json:"id"`
	Year          int     `json:"year"`
	Week          int     `json:"week"`
	SlotID        string  `json:"slotId"`
	WalkType      *string `json:"walkType,omitempty"`
	Sector        *string `json:"sector,omitempty"`
	Capacity      *int    `json:"capacity,omitempty"`
	Blocked       bool    `json:"blocked"`
	BlockedReason *string `json:"blockedReason,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// UpdateOverrideResponse HTTP response model
type UpdateOverrideResponse struct {
	Applied  bool          `json:"applied"`
	Override *OverrideView `json:"override,omitempty"`
	Report   rules.Report  `json:"report"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *updateOverride.Response) *UpdateOverrideResponse {
	resp := &UpdateOverrideResponse{
		Applied: result.Applied,
		Report:  result.Report,
	}

	if result.Override != nil {
		var walkType *string
		if result.Override.WalkType != nil {
			wt := string(*result.Override.WalkType)
			walkType = &wt
		}
		resp.Override = &OverrideView{
			ID:            result.Override.ID,
			Year:          result.Override.Year,
			Week:          result.Override.Week,
			SlotID:        result.Override.SlotID.String(),
			WalkType:      walkType,
			Sector:        result.Override.Sector,
			Capacity:      result.Override.Capacity,
			Blocked:       result.Override.Blocked,
			BlockedReason: result.Override.BlockedReason,
			Notes:         result.Override.Notes,
		}
	}

	return resp
}

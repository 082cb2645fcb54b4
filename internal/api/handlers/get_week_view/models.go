package get_week_view

import (
	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	getWeekView "github.com/m04kA/DWS-ScheduleService/internal/usecase/get_week_view"
)

// WeekViewResponse HTTP response model недельной сетки
type WeekViewResponse struct {
	Year   int        `json:"year"`
	Week   int        `json:"week"`
	Monday string     `json:"monday"`
	Slots  []SlotView `json:"slots"`
}

// SlotView эффективный слот в ответе API
type SlotView struct {
	SlotID        string  `json:"slotId"`
	Day           string  `json:"day"`
	Block         string  `json:"block"`
	Date          string  `json:"date"`
	WalkType      string  `json:"walkType"`
	Sector        string  `json:"sector,omitempty"`
	Capacity      int     `json:"capacity"`
	Occupancy     int     `json:"occupancy"`
	Remaining     int     `json:"remaining"`
	Blocked       bool    `json:"blocked"`
	BlockedReason *string `json:"blockedReason,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	WalkStartTime string  `json:"walkStartTime"`
	PickupMinutes int     `json:"pickupMinutes"`
	WalkMinutes   int     `json:"walkMinutes"`
	ReturnMinutes int     `json:"returnMinutes"`

	Assignments []AssignmentItem `json:"assignments"`
}

// AssignmentItem назначение внутри слота с данными собаки
type AssignmentItem struct {
	ID        int64   `json:"id"`
	DogID     int64   `json:"dogId"`
	DogName   string  `json:"dogName"`
	OwnerName string  `json:"ownerName"`
	Sector    string  `json:"sector,omitempty"`
	Confirmed bool    `json:"confirmed"`
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *getWeekView.Response) *WeekViewResponse {
	weekRef := domain.WeekRef{Year: result.Year, Week: result.Week}

	slots := make([]SlotView, 0, len(result.Slots))
	for i := range result.Slots {
		slot := &result.Slots[i]

		assignments := make([]AssignmentItem, 0, len(slot.Assignments))
		for _, a := range slot.Assignments {
			assignments = append(assignments, AssignmentItem{
				ID:        a.ID,
				DogID:     a.DogID,
				DogName:   a.Dog.Name,
				OwnerName: a.Dog.OwnerName,
				Sector:    a.Dog.Sector,
				Confirmed: a.Confirmed,
				Completed: a.Completed,
				Notes:     a.Notes,
			})
		}

		slots = append(slots, SlotView{
			SlotID:        slot.SlotID.String(),
			Day:           string(slot.Day),
			Block:         string(slot.Block),
			Date:          weekRef.DateOf(slot.Day).Format(domain.DateFormat),
			WalkType:      string(slot.WalkType),
			Sector:        slot.Sector,
			Capacity:      slot.Capacity,
			Occupancy:     slot.Occupancy(),
			Remaining:     slot.Remaining(),
			Blocked:       slot.Blocked,
			BlockedReason: slot.BlockedReason,
			Notes:         slot.Notes,
			WalkStartTime: slot.WalkStartTime.String(),
			PickupMinutes: slot.PickupMinutes,
			WalkMinutes:   slot.WalkMinutes,
			ReturnMinutes: slot.ReturnMinutes,
			Assignments:   assignments,
		})
	}

	return &WeekViewResponse{
		Year:   result.Year,
		Week:   result.Week,
		Monday: result.Monday.Format(domain.DateFormat),
		Slots:  slots,
	}
}

package create_rally

import (
	"time"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
	createRally "github.com/m04kA/DWS-ScheduleService/internal/usecase/create_rally"
)

// CreateRallyRequest HTTP request model
type CreateRallyRequest struct {
	Year       int     `json:"year"`
	Week       int     `json:"week"`
	Day        string  `json:"day"`        // "LU".."VE"
	StartBlock string  `json:"startBlock"` // "B1" или "B2"
	DogIDs     []int64 `json:"dogIds"`
	Notes      *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRallyRequest) ToUseCaseRequest() *createRally.Request {
	return &createRally.Request{
		Year:       r.Year,
		Week:       r.Week,
		Day:        domain.Weekday(r.Day),
		StartBlock: domain.Block(r.StartBlock),
		DogIDs:     r.DogIDs,
		Notes:      r.Notes,
	}
}

// RallyView поход в ответе API
type RallyView struct {
	ID         int64     `json:"id"`
	Year       int       `json:"year"`
	Week       int       `json:"week"`
	Day        string    `json:"day"`
	StartBlock string    `json:"startBlock"`
	Slots      []string  `json:"slots"`
	Capacity   int       `json:"capacity"`
	DogIDs     []int64   `json:"dogIds"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateRallyResponse HTTP response model
type CreateRallyResponse struct {
	Created bool         `json:"created"`
	Rally   *RallyView   `json:"rally,omitempty"`
	Report  rules.Report `json:"report"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *createRally.Response) *CreateRallyResponse {
	resp := &CreateRallyResponse{
		Created: result.Created,
		Report:  result.Report,
	}

	if result.Rally != nil {
		slots := make([]string, 0, 2)
		for _, id := range result.Rally.Slots() {
			slots = append(slots, id.String())
		}
		resp.Rally = &RallyView{
			ID:         result.Rally.ID,
			Year:       result.Rally.Year,
			Week:       result.Rally.Week,
			Day:        string(result.Rally.Day),
			StartBlock: string(result.Rally.StartBlock),
			Slots:      slots,
			Capacity:   result.Rally.Capacity,
			DogIDs:     result.Rally.DogIDs,
			Notes:      result.Rally.Notes,
			CreatedAt:  result.Rally.CreatedAt,
		}
	}

	return resp
}

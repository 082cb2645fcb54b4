package models

import (
	"errors"
	"time"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

var (
	// ErrInvalidTier возвращается при неизвестном тарифе рутины
	ErrInvalidTier = errors.New("invalid routine tier")

	// ErrInvalidTimePreference возвращается при неизвестном предпочтении времени
	ErrInvalidTimePreference = errors.New("invalid time preference")

	// ErrInvalidWeekday возвращается при неизвестном дне недели
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidWalkType возвращается при неизвестном типе прогулки
	ErrInvalidWalkType = errors.New("invalid walk type")
)

// UpsertRoutineRequest запрос на создание или замену рутины собаки
type UpsertRoutineRequest struct {
	DogID             int64    `json:"dogId"`
	Tier              string   `json:"tier"`
	PreferredSector   *string  `json:"preferredSector,omitempty"`
	PreferredTime     *string  `json:"preferredTime,omitempty"`
	PreferredDays     []string `json:"preferredDays,omitempty"`
	PreferredWalkType *string  `json:"preferredWalkType,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

// ToDomainRoutine конвертирует request в domain модель
func (r *UpsertRoutineRequest) ToDomainRoutine() (*domain.DogRoutine, error) {
	tier := domain.RoutineTier(r.Tier)
	if !tier.Valid() {
		return nil, ErrInvalidTier
	}

	pref := domain.PreferIndifferent
	if r.PreferredTime != nil {
		pref = domain.TimePreference(*r.PreferredTime)
		if !pref.Valid() {
			return nil, ErrInvalidTimePreference
		}
	}

	days := make([]domain.Weekday, 0, len(r.PreferredDays))
	for _, raw := range r.PreferredDays {
		day := domain.Weekday(raw)
		if !day.Valid() {
			return nil, ErrInvalidWeekday
		}
		days = append(days, day)
	}

	var walkType *domain.WalkType
	if r.PreferredWalkType != nil {
		wt := domain.WalkType(*r.PreferredWalkType)
		if !wt.Valid() {
			return nil, ErrInvalidWalkType
		}
		walkType = &wt
	}

	return &domain.DogRoutine{
		DogID:             r.DogID,
		Tier:              tier,
		PreferredSector:   r.PreferredSector,
		PreferredTime:     pref,
		PreferredDays:     days,
		PreferredWalkType: walkType,
		Notes:             r.Notes,
	}, nil
}

// RoutineResponse рутина собаки в ответе API
type RoutineResponse struct {
	ID                int64     `json:"id"`
	DogID             int64     `json:"dogId"`
	Tier              string    `json:"tier"`
	ExpectedWalks     int       `json:"expectedWalks"`
	PreferredSector   *string   `json:"preferredSector,omitempty"`
	PreferredTime     string    `json:"preferredTime"`
	PreferredDays     []string  `json:"preferredDays"`
	PreferredWalkType *string   `json:"preferredWalkType,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// FromDomainRoutine конвертирует domain модель в response
func FromDomainRoutine(r *domain.DogRoutine, expectedWalks int) *RoutineResponse {
	days := make([]string, 0, len(r.PreferredDays))
	for _, d := range r.PreferredDays {
		days = append(days, string(d))
	}

	var walkType *string
	if r.PreferredWalkType != nil {
		wt := string(*r.PreferredWalkType)
		walkType = &wt
	}

	return &RoutineResponse{
		ID:                r.ID,
		DogID:             r.DogID,
		Tier:              string(r.Tier),
		ExpectedWalks:     expectedWalks,
		PreferredSector:   r.PreferredSector,
		PreferredTime:     string(r.PreferredTime),
		PreferredDays:     days,
		PreferredWalkType: walkType,
		Notes:             r.Notes,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

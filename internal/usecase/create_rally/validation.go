package create_rally

import (
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// validateRequest проверяет синтаксическую корректность запроса
func validateRequest(req *Request) error {
	weekRef := domain.WeekRef{Year: req.Year, Week: req.Week}
	if err := weekRef.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !req.Day.Valid() {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, req.Day)
	}

	if !req.StartBlock.Valid() {
		return fmt.Errorf("%w: unknown block %q", ErrInvalidInput, req.StartBlock)
	}

	// Поход занимает два последовательных блока одного дня
	if _, ok := req.StartBlock.Next(); !ok {
		return ErrInvalidStartBlock
	}

	if len(req.DogIDs) == 0 {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}

	if len(req.DogIDs) > domain.RallyCapacity {
		return fmt.Errorf("%w: %d dogs exceed the rally capacity of %d",
			ErrTooManyParticipants, len(req.DogIDs), domain.RallyCapacity)
	}

	seen := make(map[int64]bool, len(req.DogIDs))
	for _, id := range req.DogIDs {
		if id <= 0 {
			return fmt.Errorf("%w: dog id must be positive", ErrInvalidInput)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate dog id=%d", ErrInvalidInput, id)
		}
		seen[id] = true
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

package create_assignment

import (
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// validateRequest проверяет синтаксическую корректность запроса
// Бизнес-правила (емкость, конфликты) проверяет пакет rules внутри транзакции
func validateRequest(req *Request) error {
	if req.DogID <= 0 {
		return fmt.Errorf("%w: dog id must be positive", ErrInvalidInput)
	}

	if !req.SlotID.Valid() {
		return fmt.Errorf("%w: invalid slot id %q", ErrInvalidInput, req.SlotID)
	}

	weekRef := domain.WeekRef{Year: req.Year, Week: req.Week}
	if err := weekRef.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.OverridePrice != nil && *req.OverridePrice < 0 {
		return fmt.Errorf("%w: override price must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

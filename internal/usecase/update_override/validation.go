package update_override

import (
	"fmt"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// validateRequest проверяет синтаксическую корректность запроса
// Бизнес-последствия оверрайда (переполнение, блокировка занятого слота)
// проверяет пакет rules внутри транзакции
func validateRequest(req *Request) error {
	if !req.SlotID.Valid() {
		return fmt.Errorf("%w: invalid slot id %q", ErrInvalidInput, req.SlotID)
	}

	weekRef := domain.WeekRef{Year: req.Year, Week: req.Week}
	if err := weekRef.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.WalkType != nil && !req.WalkType.Valid() {
		return fmt.Errorf("%w: unknown walk type %q", ErrInvalidInput, *req.WalkType)
	}

	if req.BlockedReason != nil && len(*req.BlockedReason) > domain.MaxBlockedReasonLength {
		return fmt.Errorf("%w: blocked reason exceeds %d characters", ErrInvalidInput, domain.MaxBlockedReasonLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Reset && (req.WalkType != nil || req.Sector != nil || req.Capacity != nil || req.Blocked) {
		return fmt.Errorf("%w: reset cannot be combined with override fields", ErrInvalidInput)
	}

	return nil
}

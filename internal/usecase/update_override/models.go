package update_override

import (
	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
)

// Request модель запроса на изменение оверрайда слота на неделю
// nil-поле означает "оставить значение шаблона"
type Request struct {
	Year   int
	Week   int
	SlotID domain.SlotID

	WalkType *domain.WalkType
	Sector   *string
	Capacity *int

	Blocked       bool
	BlockedReason *string
	Notes         *string

	// Reset удаляет оверрайд целиком, возвращая слот к шаблону
	Reset bool
}

// Response модель ответа с сохраненным оверрайдом и отчетом валидатора
// При нарушениях Applied=false, Override=nil, детали в Report
type Response struct {
	Applied  bool
	Override *domain.WeekOverride
	Report   rules.Report
}

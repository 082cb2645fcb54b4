package get_week_view

import (
	"time"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
)

// Request модель запроса недельной сетки
type Request struct {
	Year int // ISO-год
	Week int // Номер ISO-недели (1-52/53)
}

// Response модель ответа с материализованной сеткой недели
type Response struct {
	Year   int       // ISO-год
	Week   int       // Номер ISO-недели
	Monday time.Time // Дата понедельника этой недели

	// Slots все 15 эффективных слотов в порядке день - блок
	Slots []domain.EffectiveSlotView
}

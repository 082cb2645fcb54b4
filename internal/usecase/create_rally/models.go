package create_rally

import (
	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
)

// Request модель запроса на создание похода
type Request struct {
	Year       int
	Week       int
	Day        domain.Weekday
	StartBlock domain.Block

	DogIDs []int64
	Notes  *string
}

// Response модель ответа с созданным походом и отчетом валидатора
// При нарушениях Created=false, Rally=nil, детали в Report
type Response struct {
	Created bool
	Rally   *domain.RallyEvent
	Report  rules.Report
}

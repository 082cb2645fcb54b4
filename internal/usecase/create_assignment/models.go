package create_assignment

import (
	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	"github.com/m04kA/DWS-ScheduleService/internal/rules"
)

// Request модель запроса на создание назначения
type Request struct {
	DogID  int64         // ID собаки в PetService
	SlotID domain.SlotID // Слот вида "MA-B2"
	Year   int           // ISO-год
	Week   int           // Номер ISO-недели

	Confirmed     bool     // Подтверждено владельцем
	OverridePrice *float64 // Ручная цена вместо тарифа (опционально)
	Notes         *string  // Заметки (опционально)
}

// Response модель ответа с созданным назначением и отчетом валидатора
// При нарушениях Created=false, Assignment=nil, а детали лежат в Report
type Response struct {
	Created    bool
	Assignment *domain.Assignment
	Report     rules.Report
}

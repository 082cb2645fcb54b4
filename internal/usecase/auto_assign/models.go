package auto_assign

import "github.com/m04kA/DWS-ScheduleService/internal/domain"

// Request модель запроса на автоматическое назначение по рутине
type Request struct {
	DogID int64 // ID собаки в PetService
	Year  int   // ISO-год
	Week  int   // Номер ISO-недели
}

// Response модель ответа автоназначения
// Повторный запуск идемпотентен: required считается от уже закрытой части квоты
type Response struct {
	DogID int64
	Year  int
	Week  int

	Tier            domain.RoutineTier // Тариф рутины
	AlreadyAssigned int                // Назначений было до запуска
	Required        int                // Сколько нужно было добавить
	Filled          int                // Сколько удалось добавить
	Satisfied       bool               // Квота недели полностью закрыта

	// SlotIDs слоты, добавленные этим запуском, в порядке выбора
	SlotIDs []domain.SlotID
}

package analyze_week

import "github.com/m04kA/DWS-ScheduleService/internal/rules"

// Request модель запроса анализа недели
type Request struct {
	Year int
	Week int
}

// Response модель ответа с аналитикой недели
type Response struct {
	Year     int                 `json:"year"`
	Week     int                 `json:"week"`
	Analysis *rules.WeekAnalysis `json:"analysis"`
	Health   rules.Report        `json:"health"`
}

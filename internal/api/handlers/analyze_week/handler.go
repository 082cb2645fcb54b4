package analyze_week

import (
	"errors"
	"net/http"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
	analyzeWeek "github.com/m04kA/DWS-ScheduleService/internal/usecase/analyze_week"
)

const msgInvalidWeek = "некорректный год или номер недели"

type Handler struct {
	useCase AnalyzeWeekUseCase
	logger  Logger
}

func NewHandler(useCase AnalyzeWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/weeks/{year}/{week}/analysis
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, week, err := handlers.PathWeek(r)
	if err != nil {
		h.logger.Warn("GET /weeks/{year}/{week}/analysis - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &analyzeWeek.Request{Year: year, Week: week})
	if err != nil {
		switch {
		case errors.Is(err, analyzeWeek.ErrInvalidInput):
			h.logger.Warn("GET /weeks/%d/%d/analysis - Invalid week: %v", year, week, err)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		default:
			h.logger.Error("GET /weeks/%d/%d/analysis - Failed to analyze week: %v", year, week, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

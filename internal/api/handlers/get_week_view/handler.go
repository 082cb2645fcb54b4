package get_week_view

import (
	"errors"
	"net/http"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
	getWeekView "github.com/m04kA/DWS-ScheduleService/internal/usecase/get_week_view"
)

const (
	msgInvalidWeek        = "некорректный год или номер недели"
	msgDogDataUnavailable = "данные о собаках временно недоступны"
)

type Handler struct {
	useCase GetWeekViewUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/weeks/{year}/{week}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, week, err := handlers.PathWeek(r)
	if err != nil {
		h.logger.Warn("GET /weeks/{year}/{week}/slots - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekView.Request{Year: year, Week: week})
	if err != nil {
		switch {
		case errors.Is(err, getWeekView.ErrInvalidInput):
			h.logger.Warn("GET /weeks/%d/%d/slots - Invalid week: %v", year, week, err)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		case errors.Is(err, getWeekView.ErrDogDataUnavailable):
			h.logger.Error("GET /weeks/%d/%d/slots - Dog data unavailable: %v", year, week, err)
			handlers.RespondError(w, http.StatusBadGateway, msgDogDataUnavailable)

		default:
			h.logger.Error("GET /weeks/%d/%d/slots - Failed to build week view: %v", year, week, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package get_routine

import (
	"errors"
	"net/http"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
	routinesService "github.com/m04kA/DWS-ScheduleService/internal/service/routines"
)

const (
	msgInvalidDogID    = "некорректный идентификатор собаки"
	msgRoutineNotFound = "рутина собаки не настроена"
)

type Handler struct {
	service RoutinesService
	logger  Logger
}

func NewHandler(service RoutinesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dogs/{dogId}/routine
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dogID, err := handlers.PathInt64(r, "dogId")
	if err != nil {
		h.logger.Warn("GET /dogs/{dogId}/routine - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDogID)
		return
	}

	result, err := h.service.Get(r.Context(), dogID)
	if err != nil {
		switch {
		case errors.Is(err, routinesService.ErrInvalidInput):
			h.logger.Warn("GET /dogs/%d/routine - Invalid input: %v", dogID, err)
			handlers.RespondBadRequest(w, msgInvalidDogID)

		case errors.Is(err, routinesService.ErrRoutineNotFound):
			h.logger.Warn("GET /dogs/%d/routine - Routine not found", dogID)
			handlers.RespondNotFound(w, msgRoutineNotFound)

		default:
			h.logger.Error("GET /dogs/%d/routine - Failed to get routine: %v", dogID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

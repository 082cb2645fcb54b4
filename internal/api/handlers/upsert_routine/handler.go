package upsert_routine

import (
	"errors"
	"net/http"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
	routinesService "github.com/m04kA/DWS-ScheduleService/internal/service/routines"
	"github.com/m04kA/DWS-ScheduleService/internal/service/routines/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDogID       = "некорректный идентификатор собаки"
	msgInvalidInput       = "некорректные данные рутины"
	msgDogNotFound        = "собака не найдена"
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

// Handle PUT /api/v1/dogs/{dogId}/routine
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dogID, err := handlers.PathInt64(r, "dogId")
	if err != nil {
		h.logger.Warn("PUT /dogs/{dogId}/routine - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDogID)
		return
	}

	var req models.UpsertRoutineRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /dogs/%d/routine - Invalid request body: %v", dogID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Идентификатор в пути авторитетнее тела
	req.DogID = dogID

	result, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, routinesService.ErrInvalidInput):
			h.logger.Warn("PUT /dogs/%d/routine - Invalid input: %v", dogID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, routinesService.ErrDogNotFound):
			h.logger.Warn("PUT /dogs/%d/routine - Dog not found", dogID)
			handlers.RespondNotFound(w, msgDogNotFound)

		default:
			h.logger.Error("PUT /dogs/%d/routine - Failed to upsert routine: %v", dogID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /dogs/%d/routine - Routine saved: id=%d, tier=%s", dogID, result.ID, result.Tier)
	handlers.RespondJSON(w, http.StatusOK, result)
}

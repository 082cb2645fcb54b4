package auto_assign

import (
	"errors"
	"net/http"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
	autoAssign "github.com/m04kA/DWS-ScheduleService/internal/usecase/auto_assign"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDogID       = "некорректный идентификатор собаки"
	msgInvalidInput       = "некорректные входные данные"
	msgNoRoutine          = "у собаки нет настроенной рутины"
	msgManualRequired     = "разовый тариф назначается только вручную"
	msgNoAvailableSlots   = "нет доступных слотов для автоназначения"
)

type Handler struct {
	useCase AutoAssignUseCase
	logger  Logger
}

func NewHandler(useCase AutoAssignUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/dogs/{dogId}/auto-assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dogID, err := handlers.PathInt64(r, "dogId")
	if err != nil {
		h.logger.Warn("POST /dogs/{dogId}/auto-assign - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDogID)
		return
	}

	var req AutoAssignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /dogs/%d/auto-assign - Invalid request body: %v", dogID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &autoAssign.Request{
		DogID: dogID,
		Year:  req.Year,
		Week:  req.Week,
	})
	if err != nil {
		switch {
		case errors.Is(err, autoAssign.ErrInvalidInput):
			h.logger.Warn("POST /dogs/%d/auto-assign - Invalid input: %v", dogID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, autoAssign.ErrNoRoutineConfigured):
			h.logger.Warn("POST /dogs/%d/auto-assign - No routine configured", dogID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoRoutine)

		case errors.Is(err, autoAssign.ErrManualAssignmentRequired):
			h.logger.Warn("POST /dogs/%d/auto-assign - On-demand tier", dogID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgManualRequired)

		case errors.Is(err, autoAssign.ErrNoAvailableSlots):
			h.logger.Warn("POST /dogs/%d/auto-assign - No available slots: year=%d, week=%d",
				dogID, req.Year, req.Week)
			handlers.RespondError(w, http.StatusConflict, msgNoAvailableSlots)

		default:
			h.logger.Error("POST /dogs/%d/auto-assign - Failed to auto-assign: %v", dogID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /dogs/%d/auto-assign - Filled %d/%d slots, satisfied=%t",
		dogID, result.Filled, result.Required, result.Satisfied)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

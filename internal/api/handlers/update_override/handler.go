package update_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	updateOverride "github.com/m04kA/DWS-ScheduleService/internal/usecase/update_override"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWeek        = "некорректный год или номер недели"
	msgInvalidSlotID      = "некорректный идентификатор слота, ожидается ДЕНЬ-БЛОК, например MA-B2"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase UpdateOverrideUseCase
	logger  Logger
}

func NewHandler(useCase UpdateOverrideUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/weeks/{year}/{week}/slots/{slotId}/override
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, week, err := handlers.PathWeek(r)
	if err != nil {
		h.logger.Warn("PUT /weeks/{year}/{week}/slots/{slotId}/override - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	slotID, err := domain.ParseSlotID(mux.Vars(r)["slotId"])
	if err != nil {
		h.logger.Warn("PUT /weeks/%d/%d/slots/{slotId}/override - Invalid slot id: %v", year, week, err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /weeks/%d/%d/slots/%s/override - Invalid request body: %v", year, week, slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(year, week, slotID))
	if err != nil {
		switch {
		case errors.Is(err, updateOverride.ErrInvalidInput):
			h.logger.Warn("PUT /weeks/%d/%d/slots/%s/override - Invalid input: %v", year, week, slotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /weeks/%d/%d/slots/%s/override - Failed to update override: %v",
				year, week, slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Нарушения правил - это 409 с полным отчетом
	if !result.Applied {
		h.logger.Warn("PUT /weeks/%d/%d/slots/%s/override - Refused by validator: violations=%d",
			year, week, slotID, len(result.Report.Violations))
		handlers.RespondJSON(w, http.StatusConflict, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("PUT /weeks/%d/%d/slots/%s/override - Override applied", year, week, slotID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

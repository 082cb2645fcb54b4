package create_rally

import (
	"errors"
	"net/http"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
	createRally "github.com/m04kA/DWS-ScheduleService/internal/usecase/create_rally"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные входные данные"
	msgInvalidStartBlock   = "поход не может начинаться в последнем блоке дня"
	msgTooManyParticipants = "превышена емкость похода"
)

type Handler struct {
	useCase CreateRallyUseCase
	logger  Logger
}

func NewHandler(useCase CreateRallyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rallies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRallyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rallies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createRally.ErrInvalidStartBlock):
			h.logger.Warn("POST /rallies - Invalid start block: %s", req.StartBlock)
			handlers.RespondBadRequest(w, msgInvalidStartBlock)

		case errors.Is(err, createRally.ErrTooManyParticipants):
			h.logger.Warn("POST /rallies - Too many participants: %d", len(req.DogIDs))
			handlers.RespondBadRequest(w, msgTooManyParticipants)

		case errors.Is(err, createRally.ErrInvalidInput):
			h.logger.Warn("POST /rallies - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rallies - Failed to create rally: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Нарушения правил - это 409 с полным отчетом
	if !result.Created {
		h.logger.Warn("POST /rallies - Refused by validator: violations=%d", len(result.Report.Violations))
		handlers.RespondJSON(w, http.StatusConflict, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("POST /rallies - Rally created: id=%d, day=%s, startBlock=%s",
		result.Rally.ID, req.Day, req.StartBlock)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package create_assignment

import (
	"errors"
	"net/http"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
	createAssignment "github.com/m04kA/DWS-ScheduleService/internal/usecase/create_assignment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота, ожидается ДЕНЬ-БЛОК, например MA-B2"
	msgInvalidInput       = "некорректные входные данные"
	msgDogNotFound        = "собака не найдена"
)

type Handler struct {
	useCase CreateAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assignments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /assignments - Invalid slot id %q: %v", req.SlotID, err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAssignment.ErrInvalidInput):
			h.logger.Warn("POST /assignments - Invalid input: dog_id=%d, slot=%s: %v", req.DogID, req.SlotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAssignment.ErrDogNotFound):
			h.logger.Warn("POST /assignments - Dog not found: dog_id=%d", req.DogID)
			handlers.RespondNotFound(w, msgDogNotFound)

		default:
			h.logger.Error("POST /assignments - Failed to create assignment: dog_id=%d, slot=%s, error=%v",
				req.DogID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Нарушения правил - это 409 с полным отчетом, а не ошибка сервера
	if !result.Created {
		h.logger.Warn("POST /assignments - Refused by validator: dog_id=%d, slot=%s, violations=%d",
			req.DogID, req.SlotID, len(result.Report.Violations))
		handlers.RespondJSON(w, http.StatusConflict, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("POST /assignments - Assignment created: id=%d, dog_id=%d, slot=%s",
		result.Assignment.ID, req.DogID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package complete_assignment

import (
	"errors"
	"net/http"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
	completeAssignment "github.com/m04kA/DWS-ScheduleService/internal/usecase/complete_assignment"
)

const (
	msgInvalidID          = "некорректный идентификатор назначения"
	msgAssignmentNotFound = "назначение не найдено"
	msgAlreadyCompleted   = "прогулка уже завершена"
)

type Handler struct {
	useCase CompleteAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase CompleteAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/assignments/{id}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /assignments/{id}/complete - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &completeAssignment.Request{AssignmentID: id})
	if err != nil {
		switch {
		case errors.Is(err, completeAssignment.ErrInvalidInput):
			h.logger.Warn("PATCH /assignments/%d/complete - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, completeAssignment.ErrAssignmentNotFound):
			h.logger.Warn("PATCH /assignments/%d/complete - Assignment not found", id)
			handlers.RespondNotFound(w, msgAssignmentNotFound)

		case errors.Is(err, completeAssignment.ErrAlreadyCompleted):
			h.logger.Warn("PATCH /assignments/%d/complete - Already completed", id)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCompleted)

		default:
			h.logger.Error("PATCH /assignments/%d/complete - Failed to complete assignment: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /assignments/%d/complete - Assignment completed, sync_error=%t",
		id, result.SyncError != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

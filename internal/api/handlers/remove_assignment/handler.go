package remove_assignment

import (
	"errors"
	"net/http"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
	assignmentsService "github.com/m04kA/DWS-ScheduleService/internal/service/assignments"
)

const (
	msgInvalidID          = "некорректный идентификатор назначения"
	msgAssignmentNotFound = "назначение не найдено"
	msgCompletedImmutable = "завершенная прогулка не может быть удалена"
)

type Handler struct {
	service AssignmentsService
	logger  Logger
}

func NewHandler(service AssignmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/assignments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /assignments/{id} - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, assignmentsService.ErrInvalidInput):
			h.logger.Warn("DELETE /assignments/%d - Invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, assignmentsService.ErrAssignmentNotFound):
			h.logger.Warn("DELETE /assignments/%d - Assignment not found", id)
			handlers.RespondNotFound(w, msgAssignmentNotFound)

		case errors.Is(err, assignmentsService.ErrCompletedImmutable):
			h.logger.Warn("DELETE /assignments/%d - Assignment is completed", id)
			handlers.RespondError(w, http.StatusConflict, msgCompletedImmutable)

		default:
			h.logger.Error("DELETE /assignments/%d - Failed to remove assignment: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /assignments/%d - Assignment removed", id)
	handlers.RespondNoContent(w)
}

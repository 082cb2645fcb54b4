package get_unsynced

import (
	"errors"
	"net/http"

	"github.com/m04kA/DWS-ScheduleService/internal/api/handlers"
	billingsyncService "github.com/m04kA/DWS-ScheduleService/internal/service/billingsync"
)

const msgInvalidWeek = "некорректный год или номер недели"

type Handler struct {
	service BillingSyncService
	logger  Logger
}

func NewHandler(service BillingSyncService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/weeks/{year}/{week}/billing/unsynced
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, week, err := handlers.PathWeek(r)
	if err != nil {
		h.logger.Warn("GET /weeks/{year}/{week}/billing/unsynced - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	result, err := h.service.FindUnsynced(r.Context(), year, week)
	if err != nil {
		switch {
		case errors.Is(err, billingsyncService.ErrInvalidInput):
			h.logger.Warn("GET /weeks/%d/%d/billing/unsynced - Invalid week: %v", year, week, err)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		default:
			h.logger.Error("GET /weeks/%d/%d/billing/unsynced - Failed to find unsynced: %v", year, week, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package sync_week

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

// Handle POST /api/v1/weeks/{year}/{week}/billing/sync
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, week, err := handlers.PathWeek(r)
	if err != nil {
		h.logger.Warn("POST /weeks/{year}/{week}/billing/sync - Invalid path: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	result, err := h.service.SyncWeek(r.Context(), year, week)
	if err != nil {
		switch {
		case errors.Is(err, billingsyncService.ErrInvalidInput):
			h.logger.Warn("POST /weeks/%d/%d/billing/sync - Invalid week: %v", year, week, err)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		default:
			h.logger.Error("POST /weeks/%d/%d/billing/sync - Failed to sync week: %v", year, week, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Частичные сбои не делают весь батч ошибкой: сводка отдается как есть
	h.logger.Info("POST /weeks/%d/%d/billing/sync - total=%d, created=%d, alreadySynced=%d, failed=%d",
		year, week, result.Total, result.Created, result.AlreadySynced, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package delete_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/workinghours"
)

const (
	msgInvalidEntryID   = "некорректный ID окна рабочих часов"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "окно рабочих часов не найдено"
	msgForbidden        = "доступ запрещен"
	msgStoreUnavailable = "хранилище временно недоступно, повторите запрос"
)

type Handler struct {
	service WorkingHoursService
	logger  Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/working-hours/{entryId}
// Уже созданные бронирования при удалении окна не затрагиваются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entryIDStr := vars["entryId"]

	entryID, err := strconv.ParseInt(entryIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /working-hours/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /working-hours/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Remove(r.Context(), entryID, actorID); err != nil {
		switch {
		case errors.Is(err, workinghours.ErrEntryNotFound):
			h.logger.Warn("DELETE /working-hours/{id} - Entry not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, workinghours.ErrStaffNotFound):
			h.logger.Warn("DELETE /working-hours/{id} - Staff not found: entry_id=%d", entryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, workinghours.ErrAccessDenied):
			h.logger.Warn("DELETE /working-hours/{id} - Access denied: entry_id=%d, actor_id=%d", entryID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, workinghours.ErrStoreUnavailable):
			h.logger.Warn("DELETE /working-hours/{id} - Store unavailable: entry_id=%d", entryID)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("DELETE /working-hours/{id} - Failed to delete entry: entry_id=%d, error=%v",
				entryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /working-hours/{id} - Entry deleted successfully: entry_id=%d, actor_id=%d",
		entryID, actorID)
	handlers.RespondNoContent(w)
}

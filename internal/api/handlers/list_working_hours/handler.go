package list_working_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/workinghours"
)

const (
	msgInvalidStaffID   = "некорректный ID сотрудника"
	msgStaffNotFound    = "сотрудник не найден"
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

// Handle GET /api/v1/staff/{staffId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffIDStr := vars["staffId"]

	staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/working-hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.ListFor(r.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/working-hours - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, workinghours.ErrStoreUnavailable):
			h.logger.Warn("GET /staff/{id}/working-hours - Store unavailable: staff_id=%d", staffID)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /staff/{id}/working-hours - Failed to list entries: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/working-hours - Entries retrieved successfully: staff_id=%d, count=%d",
		staffID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, result)
}

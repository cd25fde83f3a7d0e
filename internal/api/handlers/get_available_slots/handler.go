package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidServiceID   = "некорректный ID услуги"
	msgMissingServiceID   = "ID услуги обязателен"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStaffNotFound      = "сотрудник не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceNotAssigned = "услуга не назначена этому сотруднику"
	msgPastDate           = "дата в прошлом"
	msgDateTooFar         = "дата слишком далеко в будущем"
	msgStoreUnavailable   = "хранилище временно недоступно, повторите запрос"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffIDStr := vars["staffId"]
	staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-slots - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /staff/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /staff/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(staffID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/available-slots - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /staff/{id}/available-slots - Service not found: staff_id=%d, service_id=%d",
				staffID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotAssigned):
			h.logger.Warn("GET /staff/{id}/available-slots - Service not assigned: staff_id=%d, service_id=%d",
				staffID, serviceID)
			handlers.RespondUnprocessableEntity(w, msgServiceNotAssigned)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /staff/{id}/available-slots - Date in the past: staff_id=%d, date=%s", staffID, dateStr)
			handlers.RespondUnprocessableEntity(w, msgPastDate)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /staff/{id}/available-slots - Date too far in future: staff_id=%d, date=%s", staffID, dateStr)
			handlers.RespondUnprocessableEntity(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Warn("GET /staff/{id}/available-slots - Store unavailable: staff_id=%d", staffID)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /staff/{id}/available-slots - Failed to get slots: staff_id=%d, service_id=%d, error=%v",
				staffID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /staff/{id}/available-slots - Slots retrieved successfully: staff_id=%d, service_id=%d, slots_count=%d",
		staffID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}

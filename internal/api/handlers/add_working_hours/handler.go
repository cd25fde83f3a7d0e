package add_working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/workinghours"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgStaffNotFound      = "сотрудник не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidRange       = "некорректный диапазон рабочих часов"
	msgOverlap            = "окно пересекается с существующими рабочими часами"
	msgInvalidInput       = "некорректные данные рабочих часов"
	msgStoreUnavailable   = "хранилище временно недоступно, повторите запрос"
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

// Handle POST /api/v1/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /working-hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), req.ToServiceRequest(actorID))
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrStaffNotFound):
			h.logger.Warn("POST /working-hours - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, workinghours.ErrAccessDenied):
			h.logger.Warn("POST /working-hours - Access denied: staff_id=%d, actor_id=%d", req.StaffID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, workinghours.ErrInvalidRange):
			h.logger.Warn("POST /working-hours - Invalid range: staff_id=%d, %s-%s",
				req.StaffID, req.StartTime, req.EndTime)
			handlers.RespondUnprocessableEntity(w, msgInvalidRange)

		case errors.Is(err, workinghours.ErrOverlap):
			h.logger.Warn("POST /working-hours - Overlap: staff_id=%d, day=%d, %s-%s",
				req.StaffID, req.DayOfWeek, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, workinghours.ErrInvalidInput):
			h.logger.Warn("POST /working-hours - Invalid input: %v", err)
			handlers.RespondUnprocessableEntity(w, msgInvalidInput)

		case errors.Is(err, workinghours.ErrStoreUnavailable):
			h.logger.Warn("POST /working-hours - Store unavailable: staff_id=%d", req.StaffID)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /working-hours - Failed to add entry: staff_id=%d, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /working-hours - Entry created successfully: entry_id=%d, staff_id=%d, day=%d",
		result.ID, req.StaffID, req.DayOfWeek)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStartTime    = "некорректный формат времени начала, ожидается RFC3339"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgSlotTaken           = "выбранный временной слот уже занят"
	msgStaffNotFound       = "сотрудник не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceNotAssigned  = "услуга не назначена этому сотруднику"
	msgPastBooking         = "время начала должно быть в будущем"
	msgTooLateToBook       = "слишком поздно для бронирования этого слота"
	msgDateTooFar          = "дата бронирования слишком далеко в будущем"
	msgOutsideWorkingHours = "интервал не попадает в рабочие часы сотрудника"
	msgInvalidInput        = "некорректные данные бронирования"
	msgStoreUnavailable    = "хранилище временно недоступно, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени начала)
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: customer_id=%d, staff_id=%d", customerID, req.StaffID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceNotAssigned):
			h.logger.Warn("POST /bookings - Service not assigned: staff_id=%d, service_id=%d", req.StaffID, req.ServiceID)
			handlers.RespondUnprocessableEntity(w, msgServiceNotAssigned)

		case errors.Is(err, createBooking.ErrPastBooking):
			h.logger.Warn("POST /bookings - Start time in the past: customer_id=%d", customerID)
			handlers.RespondUnprocessableEntity(w, msgPastBooking)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: customer_id=%d, staff_id=%d", customerID, req.StaffID)
			handlers.RespondUnprocessableEntity(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: customer_id=%d", customerID)
			handlers.RespondUnprocessableEntity(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: staff_id=%d", req.StaffID)
			handlers.RespondUnprocessableEntity(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondUnprocessableEntity(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Warn("POST /bookings - Store unavailable: customer_id=%d", customerID)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, staff_id=%d, error=%v",
				customerID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d, staff_id=%d",
		result.ID, customerID, req.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

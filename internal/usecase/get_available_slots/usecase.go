package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	whRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/workinghours"
	catalog "github.com/m04kA/SMC-AppointmentService/internal/integrations/businessservice"
)

// UseCase use case для получения доступных слотов для бронирования
// Чисто читающая операция: не изменяет состояние, безопасна для
// параллельных и повторных вызовов
type UseCase struct {
	bookingRepo  BookingRepository
	whRepository WorkingHoursRepository
	catalog      CatalogClient
	policy       Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	whRepository WorkingHoursRepository,
	catalogClient CatalogClient,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		whRepository: whRepository,
		catalog:      catalogClient,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: staff=%d, service=%d, date=%s",
		req.StaffID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сотрудника
	staff, err := uc.catalog.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, catalog.ErrStaffNotFound) {
			uc.logger.Warn("GetAvailableSlots: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 3. Получаем услугу и проверяем назначение сотруднику
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.BusinessID != staff.BusinessID || !staff.ProvidesService(req.ServiceID) {
		uc.logger.Warn("GetAvailableSlots: service id=%d not assigned to staff id=%d", req.ServiceID, req.StaffID)
		return nil, ErrServiceNotAssigned
	}

	// 4. Получаем бизнес и его таймзону
	business, err := uc.catalog.GetBusiness(ctx, staff.BusinessID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get business id=%d: %v", staff.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	loc, err := time.LoadLocation(business.Timezone)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid business timezone %q: %v", business.Timezone, err)
		return nil, fmt.Errorf("%w: invalid business timezone %q", ErrInternal, business.Timezone)
	}

	// 5. Текущее время в таймзоне бизнеса; дата запроса интерпретируется там же
	now := uc.timeProvider.Now().In(loc)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)

	// 6. Валидация даты с учетом политики бронирования
	if err := validateDate(date, now, uc.policy.AdvanceDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 7. Окна рабочих часов на день недели
	// Пустой шаблон - не ошибка: сотрудник в этот день просто недоступен
	windows, err := uc.whRepository.GetByStaffAndDay(ctx, req.StaffID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, whRepo.ErrStoreUnavailable) {
			uc.logger.Error("GetAvailableSlots: working hours store unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	if len(windows) == 0 {
		uc.logger.Info("GetAvailableSlots: staff id=%d has no working hours on %s",
			req.StaffID, date.Weekday())
		return uc.emptyResponse(date, req, business.Timezone), nil
	}

	// 8. Активные бронирования сотрудника на эту дату
	dayStart, dayEnd := dayBounds(date, loc)
	bookings, err := uc.bookingRepo.GetByStaffAndInterval(ctx, req.StaffID, dayStart, dayEnd)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStoreUnavailable) {
			uc.logger.Error("GetAvailableSlots: booking store unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 9. Генерируем слоты: сетка кандидатов минус занятые интервалы
	slots, err := generateSlots(
		windows,
		service.DurationMinutes,
		uc.policy.SlotStepMinutes,
		date,
		now,
		uc.policy.MinNoticeMinutes,
		loc,
		bookings,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for staff=%d, service=%d, date=%s",
		len(slots), req.StaffID, req.ServiceID, date.Format(domain.DateFormat))

	return &Response{
		Date:      date,
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		Timezone:  business.Timezone,
		Slots:     slots,
	}, nil
}

func (uc *UseCase) emptyResponse(date time.Time, req *Request, timezone string) *Response {
	return &Response{
		Date:      date,
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		Timezone:  timezone,
		Slots:     []domain.Slot{},
	}
}

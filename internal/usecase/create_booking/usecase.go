package create_booking

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

// UseCase use case для создания бронирования
// Запрошенный слот перепроверяется на момент коммита внутри сериализуемой
// транзакции: окно между запросом доступности и созданием бронирования не
// может привести к двойному бронированию
type UseCase struct {
	bookingRepo  BookingRepository
	whRepository WorkingHoursRepository
	catalog      CatalogClient
	txManager    TransactionManager
	policy       Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepository BookingRepository,
	whRepository WorkingHoursRepository,
	catalogClient CatalogClient,
	txManager TransactionManager,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepository,
		whRepository: whRepository,
		catalog:      catalogClient,
		txManager:    txManager,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, staff=%d, service=%d, start=%s",
		req.CustomerID, req.StaffID, req.ServiceID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сотрудника
	staff, err := uc.catalog.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, catalog.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 3. Получаем услугу и проверяем назначение сотруднику
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.BusinessID != staff.BusinessID || !staff.ProvidesService(req.ServiceID) {
		uc.logger.Warn("CreateBooking: service id=%d not assigned to staff id=%d", req.ServiceID, req.StaffID)
		return nil, ErrServiceNotAssigned
	}

	// 4. Получаем бизнес и его таймзону
	business, err := uc.catalog.GetBusiness(ctx, staff.BusinessID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get business id=%d: %v", staff.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	loc, err := time.LoadLocation(business.Timezone)
	if err != nil {
		uc.logger.Error("CreateBooking: invalid business timezone %q: %v", business.Timezone, err)
		return nil, fmt.Errorf("%w: invalid business timezone %q", ErrInternal, business.Timezone)
	}

	// 5. Интервал бронирования в таймзоне бизнеса
	// endTime всегда производное от длительности услуги на момент бронирования
	now := uc.timeProvider.Now().In(loc)
	start := req.StartTime.In(loc)
	end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// 6. Временные условия: начало в будущем, notice, глубина бронирования
	if err := validateStartTime(start, now, uc.policy); err != nil {
		uc.logger.Warn("CreateBooking: start time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 7. Коммит под границей сериализации: все операции записи для одного
	// сотрудника выполняются последовательно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Интервал целиком внутри окна рабочих часов
		windows, err := uc.whRepository.GetByStaffAndDay(txCtx, req.StaffID, int(start.Weekday()))
		if err != nil {
			return uc.mapStoreErr(err, "get working hours")
		}

		if err := validateWithinWorkingHours(windows, start, end); err != nil {
			uc.logger.Warn("CreateBooking: interval %s-%s outside working hours for staff id=%d",
				start.Format(time.RFC3339), end.Format(time.RFC3339), req.StaffID)
			return err
		}

		// 7.2. Повторная проверка пересечений по текущему состоянию
		// Строки блокируются FOR UPDATE: конкурирующий коммит на тот же
		// интервал увидит ErrSlotTaken
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.StaffID, start, end)
		if err != nil {
			return uc.mapStoreErr(err, "get overlapping bookings")
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: slot taken, %d overlapping bookings for staff id=%d",
				len(overlapping), req.StaffID)
			return ErrSlotTaken
		}

		// 7.3. Статус по политике бизнеса
		status := domain.StatusPending
		if uc.policy.AutoConfirm {
			status = domain.StatusConfirmed
		}

		booking := &domain.Booking{
			CustomerID: req.CustomerID,
			StaffID:    req.StaffID,
			ServiceID:  req.ServiceID,
			StartTime:  start,
			EndTime:    end,
			Status:     status,
			// Денормализация данных услуги для истории
			ServiceName:  service.Name,
			ServicePrice: getServicePrice(service),
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return uc.mapStoreErr(err, "create booking")
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s", result.ID, result.Status)

	return &Response{
		ID:           result.ID,
		CustomerID:   result.CustomerID,
		StaffID:      result.StaffID,
		ServiceID:    result.ServiceID,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// mapStoreErr классифицирует ошибки хранилища на пути коммита
// Проигранная гонка (serialization failure, exclusion violation) выглядит
// для клиента так же, как обычный конфликт слота
func (uc *UseCase) mapStoreErr(err error, op string) error {
	switch {
	case errors.Is(err, bookingRepo.ErrSlotTaken):
		uc.logger.Warn("CreateBooking: %s: lost the race: %v", op, err)
		return ErrSlotTaken
	case errors.Is(err, bookingRepo.ErrStoreUnavailable), errors.Is(err, whRepo.ErrStoreUnavailable):
		uc.logger.Error("CreateBooking: %s: store unavailable: %v", op, err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		uc.logger.Error("CreateBooking: failed to %s: %v", op, err)
		return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
	}
}

// getServicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func getServicePrice(service *catalog.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}

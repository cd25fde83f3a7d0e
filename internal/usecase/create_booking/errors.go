package create_booking

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("create_booking: staff member not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotAssigned возвращается, когда услуга не назначена сотруднику
	ErrServiceNotAssigned = errors.New("create_booking: service is not assigned to this staff member")

	// ErrPastBooking возвращается, когда время начала не в будущем
	ErrPastBooking = errors.New("create_booking: start time is not in the future")

	// ErrTooLateToBook возвращается при нарушении минимального времени до начала
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrDateTooFarInFuture возвращается, когда дата превышает глубину бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrOutsideWorkingHours возвращается, когда интервал не лежит целиком
	// внутри окна рабочих часов сотрудника
	ErrOutsideWorkingHours = errors.New("create_booking: interval is outside working hours")

	// ErrSlotTaken возвращается, когда интервал пересекается с активным бронированием
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStoreUnavailable возвращается при временной недоступности хранилища
	ErrStoreUnavailable = errors.New("create_booking: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

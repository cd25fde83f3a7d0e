package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у актора нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyTerminal возвращается, когда бронирование уже в терминальном статусе
	ErrAlreadyTerminal = errors.New("booking status is terminal")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotFinishedYet возвращается при попытке завершить бронирование до его окончания
	ErrNotFinishedYet = errors.New("booking has not finished yet")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreUnavailable возвращается при временной недоступности хранилища
	ErrStoreUnavailable = errors.New("service: store unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

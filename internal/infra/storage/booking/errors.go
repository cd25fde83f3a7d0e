package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда интервал уже занят другим активным бронированием
	// Сюда же мапятся serialization failure и нарушение exclusion constraint
	ErrSlotTaken = errors.New("booking.repository: slot taken")

	// ErrStoreUnavailable возвращается при недоступности хранилища или таймауте запроса
	// Ошибка транзиентная, вызов можно повторить
	ErrStoreUnavailable = errors.New("booking.repository: store unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

package workinghours

import "errors"

var (
	// ErrEntryNotFound возвращается, когда окно рабочих часов не найдено
	ErrEntryNotFound = errors.New("working hours entry not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден в каталоге
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidRange возвращается при пустом или перевёрнутом окне
	ErrInvalidRange = errors.New("invalid working hours range")

	// ErrOverlap возвращается при пересечении с существующим окном того же дня
	ErrOverlap = errors.New("working hours window overlaps an existing one")

	// ErrAccessDenied возвращается, когда у актора нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreUnavailable возвращается при временной недоступности хранилища
	ErrStoreUnavailable = errors.New("service: store unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

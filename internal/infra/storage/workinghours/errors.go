package workinghours

import "errors"

var (
	// ErrEntryNotFound возвращается, когда окно рабочих часов не найдено
	ErrEntryNotFound = errors.New("workinghours.repository: entry not found")

	// ErrOverlap возвращается, когда вставка нарушает exclusion constraint
	// на пересечение окон одного сотрудника
	ErrOverlap = errors.New("workinghours.repository: window overlaps an existing one")

	// ErrStoreUnavailable возвращается при недоступности хранилища или таймауте запроса
	ErrStoreUnavailable = errors.New("workinghours.repository: store unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workinghours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workinghours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workinghours.repository: failed to scan row")
)

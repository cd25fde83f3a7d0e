package create_booking

import "time"

// Policy политика создания бронирований (из конфигурации сервиса)
type Policy struct {
	// MinNoticeMinutes минимальное время от "сейчас" до начала слота
	MinNoticeMinutes int
	// AdvanceDays максимальная глубина бронирования (0 = без ограничений)
	AdvanceDays int
	// AutoConfirm создавать бронирования сразу в статусе confirmed
	AutoConfirm bool
}

// Request модель запроса на создание бронирования
// StartTime - кандидат, а не проверенный факт: usecase заново проверяет
// доступность на момент коммита, не доверяя ранее полученному слоту
type Request struct {
	CustomerID int64     // ID клиента
	StaffID    int64     // ID сотрудника
	ServiceID  int64     // ID услуги
	StartTime  time.Time // Запрошенное время начала
	Notes      *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	CustomerID int64     // ID клиента
	StaffID    int64     // ID сотрудника
	ServiceID  int64     // ID услуги
	StartTime  time.Time // Время начала
	EndTime    time.Time // Время окончания (производное от длительности услуги)
	Status     string    // Статус бронирования

	// Денормализованные данные
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Policy политика генерации слотов (из конфигурации сервиса)
type Policy struct {
	// SlotStepMinutes шаг сетки кандидатов; эффективный шаг не превышает
	// длительность услуги
	SlotStepMinutes int
	// MinNoticeMinutes минимальное время до начала слота при запросе на сегодня
	MinNoticeMinutes int
	// AdvanceDays максимальная глубина бронирования (0 = без ограничений)
	AdvanceDays int
}

// Request модель запроса на получение доступных слотов
type Request struct {
	StaffID   int64     // ID сотрудника
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      time.Time     // Дата, на которую запрашивались слоты
	StaffID   int64         // ID сотрудника
	ServiceID int64         // ID услуги
	Timezone  string        // Таймзона бизнеса, в которой интерпретированы слоты
	Slots     []domain.Slot // Список доступных слотов по возрастанию времени
}

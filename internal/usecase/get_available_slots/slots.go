package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// effectiveStep возвращает шаг генерации слотов
// Шаг не может превышать длительность услуги: при большем шаге часть
// помещающихся интервалов никогда не была бы предложена
func effectiveStep(stepMinutes, durationMinutes int) int {
	if stepMinutes <= 0 || stepMinutes > durationMinutes {
		return durationMinutes
	}
	return stepMinutes
}

// generateSlots генерирует доступные слоты на день
// Для каждого окна рабочих часов кандидаты идут с фиксированным шагом от
// начала окна, пока start + duration помещается в окно. Кандидат отбрасывается,
// если его интервал пересекается с активным бронированием или начинается
// раньше минимально допустимого времени
func generateSlots(
	windows []*domain.WorkingHoursEntry,
	durationMinutes int,
	stepMinutes int,
	date time.Time,
	now time.Time,
	minNoticeMinutes int,
	loc *time.Location,
	bookings []*domain.Booking,
) ([]domain.Slot, error) {
	step := effectiveStep(stepMinutes, durationMinutes)
	duration := time.Duration(durationMinutes) * time.Minute

	// Минимально допустимое время начала: действует только для сегодняшней даты
	var minAllowed time.Time
	if isSameDay(date, now.In(loc)) {
		minAllowed = now.Add(time.Duration(minNoticeMinutes) * time.Minute)
	}

	slots := make([]domain.Slot, 0)

	for _, window := range windows {
		current := window.StartTime

		for {
			slotEnd, err := current.AddMinutes(durationMinutes)
			if err != nil {
				// Конец слота за границей суток - кандидат не помещается
				break
			}
			// Слот должен целиком помещаться в окно
			if window.EndTime.IsBefore(slotEnd) {
				break
			}

			start, err := current.OnDate(date, loc)
			if err != nil {
				return nil, err
			}
			end := start.Add(duration)

			if isSlotFree(start, end, bookings) && (minAllowed.IsZero() || !start.Before(minAllowed)) {
				slots = append(slots, domain.Slot{
					StartTime:       start,
					DurationMinutes: durationMinutes,
				})
			}

			current, err = current.AddMinutes(step)
			if err != nil {
				// Следующий шаг за границей суток - окно исчерпано
				break
			}
			if !current.IsBefore(window.EndTime) {
				break
			}
		}
	}

	return slots, nil
}

// isSlotFree проверяет, что интервал [start, end) не пересекается ни с одним
// активным бронированием
// Полуоткрытая семантика: граничащие интервалы не считаются пересечением
func isSlotFree(start, end time.Time, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// dayBounds возвращает границы суток [start, end) для даты в указанной локации
func dayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// WorkingHoursEntry represents one contiguous working window in a staff member's weekly template
// DayOfWeek использует нумерацию time.Weekday: 0 = воскресенье, 6 = суббота
type WorkingHoursEntry struct {
	ID        int64
	StaffID   int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidRange returns true if the window is non-empty (start strictly before end)
func (e *WorkingHoursEntry) IsValidRange() bool {
	return e.StartTime.IsBefore(e.EndTime)
}

// OverlapsWith проверяет пересечение с другим окном того же дня
// Полуоткрытая семантика: окна 09:00-12:00 и 12:00-15:00 не пересекаются
func (e *WorkingHoursEntry) OverlapsWith(other *WorkingHoursEntry) bool {
	if e.DayOfWeek != other.DayOfWeek {
		return false
	}
	return e.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(e.EndTime)
}

// Window возвращает окно как пару границ времени дня
func (e *WorkingHoursEntry) Window() TimeWindow {
	return TimeWindow{Start: e.StartTime, End: e.EndTime}
}

// TimeWindow непрерывный диапазон времени дня [Start, End)
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Contains проверяет, что интервал [start, end) целиком лежит внутри окна
func (w TimeWindow) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.Start) && !w.End.IsBefore(end)
}

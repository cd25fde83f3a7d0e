package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Границы рабочих часов и сетка слотов имеют минутную точность;
	// начало с секундами обошло бы проверку попадания в окно
	if req.StartTime.Second() != 0 || req.StartTime.Nanosecond() != 0 {
		return fmt.Errorf("%w: startTime must be aligned to whole minutes", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStartTime проверяет временные условия бронирования:
// начало строго в будущем, соблюдено минимальное время до начала,
// дата не превышает глубину бронирования
func validateStartTime(start, now time.Time, policy Policy) error {
	if !start.After(now) {
		return ErrPastBooking
	}

	if policy.MinNoticeMinutes > 0 {
		minAllowed := now.Add(time.Duration(policy.MinNoticeMinutes) * time.Minute)
		if start.Before(minAllowed) {
			return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, policy.MinNoticeMinutes)
		}
	}

	if policy.AdvanceDays > 0 {
		maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
			AddDate(0, 0, policy.AdvanceDays+1)
		if !start.Before(maxDate) {
			return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, policy.AdvanceDays)
		}
	}

	return nil
}

// validateWithinWorkingHours проверяет, что интервал [start, end) целиком
// лежит внутри одного окна рабочих часов
// Интервал, растянутый на два граничащих окна, не принимается: окна
// объявляются раздельно и перерыв между ними не бронируется
func validateWithinWorkingHours(windows []*domain.WorkingHoursEntry, start, end time.Time) error {
	startOfDay := types.NewTimeString(start)
	endOfDay := types.NewTimeString(end)

	// Интервал до полуночи следующего дня: конец "00:00" означает границу суток
	if end.Day() != start.Day() {
		if end.Hour() == 0 && end.Minute() == 0 {
			endOfDay = "24:00"
		} else {
			return ErrOutsideWorkingHours
		}
	}

	for _, window := range windows {
		if window.Window().Contains(startOfDay, endOfDay) {
			return nil
		}
	}

	return ErrOutsideWorkingHours
}

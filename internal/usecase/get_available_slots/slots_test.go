package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func window(day int, start, end string) *domain.WorkingHoursEntry {
	return &domain.WorkingHoursEntry{
		StaffID:   1,
		DayOfWeek: day,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func activeBooking(start, end time.Time) *domain.Booking {
	return &domain.Booking{
		StaffID:   1,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusConfirmed,
	}
}

func slotStarts(slots []domain.Slot) []string {
	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.StartTime.Format("15:04")
	}
	return starts
}

func TestEffectiveStep(t *testing.T) {
	assert.Equal(t, 30, effectiveStep(30, 60))
	assert.Equal(t, 60, effectiveStep(0, 60))
	assert.Equal(t, 60, effectiveStep(-5, 60))
	// Шаг больше длительности схлопывается до длительности
	assert.Equal(t, 60, effectiveStep(90, 60))
	assert.Equal(t, 15, effectiveStep(15, 15))
}

func TestGenerateSlots(t *testing.T) {
	loc := time.UTC
	// Понедельник
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)
	// "Сейчас" за сутки до даты: ограничение min notice не действует
	now := date.Add(-24 * time.Hour)

	t.Run("30-minute grid inside single window", func(t *testing.T) {
		slots, err := generateSlots(
			[]*domain.WorkingHoursEntry{window(1, "09:00", "12:00")},
			30, 30, date, now, 0, loc, nil,
		)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
			slotStarts(slots),
		)
	})

	t.Run("last candidate must fit entirely", func(t *testing.T) {
		// Услуга 60 минут, шаг 30: последний кандидат 11:00-12:00
		slots, err := generateSlots(
			[]*domain.WorkingHoursEntry{window(1, "09:00", "12:00")},
			60, 30, date, now, 0, loc, nil,
		)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"09:00", "09:30", "10:00", "10:30", "11:00"},
			slotStarts(slots),
		)
	})

	t.Run("booked interval removes overlapping candidates", func(t *testing.T) {
		booked := activeBooking(
			time.Date(2025, 6, 2, 10, 0, 0, 0, loc),
			time.Date(2025, 6, 2, 10, 30, 0, 0, loc),
		)
		slots, err := generateSlots(
			[]*domain.WorkingHoursEntry{window(1, "09:00", "12:00")},
			30, 30, date, now, 0, loc, []*domain.Booking{booked},
		)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"09:00", "09:30", "10:30", "11:00", "11:30"},
			slotStarts(slots),
		)
	})

	t.Run("adjacent booking does not block candidate", func(t *testing.T) {
		// Бронирование 09:00-10:00; полуоткрытые интервалы: слот 10:00 свободен
		booked := activeBooking(
			time.Date(2025, 6, 2, 9, 0, 0, 0, loc),
			time.Date(2025, 6, 2, 10, 0, 0, 0, loc),
		)
		slots, err := generateSlots(
			[]*domain.WorkingHoursEntry{window(1, "09:00", "12:00")},
			60, 60, date, now, 0, loc, []*domain.Booking{booked},
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"10:00", "11:00"}, slotStarts(slots))
	})

	t.Run("cancelled booking frees the interval", func(t *testing.T) {
		cancelled := &domain.Booking{
			StaffID:   1,
			StartTime: time.Date(2025, 6, 2, 10, 0, 0, 0, loc),
			EndTime:   time.Date(2025, 6, 2, 10, 30, 0, 0, loc),
			Status:    domain.StatusCancelled,
		}
		slots, err := generateSlots(
			[]*domain.WorkingHoursEntry{window(1, "09:00", "11:00")},
			30, 30, date, now, 0, loc, []*domain.Booking{cancelled},
		)
		require.NoError(t, err)
		assert.Contains(t, slotStarts(slots), "10:00")
	})

	t.Run("multiple windows produce independent grids", func(t *testing.T) {
		slots, err := generateSlots(
			[]*domain.WorkingHoursEntry{
				window(1, "09:00", "11:00"),
				window(1, "14:00", "16:00"),
			},
			60, 60, date, now, 0, loc, nil,
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "14:00", "15:00"}, slotStarts(slots))
	})

	t.Run("min notice filters same-day slots", func(t *testing.T) {
		// Сейчас 10:15 того же дня, min notice 60 минут: допустимы слоты с 11:15
		sameDayNow := time.Date(2025, 6, 2, 10, 15, 0, 0, loc)
		slots, err := generateSlots(
			[]*domain.WorkingHoursEntry{window(1, "09:00", "13:00")},
			30, 30, date, sameDayNow, 60, loc, nil,
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"11:30", "12:00", "12:30"}, slotStarts(slots))
	})

	t.Run("min notice ignored for future dates", func(t *testing.T) {
		slots, err := generateSlots(
			[]*domain.WorkingHoursEntry{window(1, "09:00", "10:00")},
			30, 30, date, now, 240, loc, nil,
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "09:30"}, slotStarts(slots))
	})

	t.Run("service longer than window yields no slots", func(t *testing.T) {
		slots, err := generateSlots(
			[]*domain.WorkingHoursEntry{window(1, "09:00", "10:00")},
			90, 30, date, now, 0, loc, nil,
		)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("window ending at midnight", func(t *testing.T) {
		slots, err := generateSlots(
			[]*domain.WorkingHoursEntry{window(1, "23:00", "24:00")},
			30, 30, date, now, 0, loc, nil,
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"23:00", "23:30"}, slotStarts(slots))
	})

	t.Run("candidate crossing midnight is skipped, not an error", func(t *testing.T) {
		// Услуга 45 минут в окне 23:00-24:00: кандидат 23:30 закончился бы
		// в 00:15 следующих суток и просто не предлагается
		slots, err := generateSlots(
			[]*domain.WorkingHoursEntry{window(1, "23:00", "24:00")},
			45, 30, date, now, 0, loc, nil,
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"23:00"}, slotStarts(slots))
	})

	t.Run("generation is deterministic", func(t *testing.T) {
		windows := []*domain.WorkingHoursEntry{window(1, "09:00", "12:00")}
		first, err := generateSlots(windows, 30, 30, date, now, 0, loc, nil)
		require.NoError(t, err)
		second, err := generateSlots(windows, 30, 30, date, now, 0, loc, nil)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestIsDateInPast(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 6, 2, 15, 0, 0, 0, loc)

	assert.True(t, isDateInPast(time.Date(2025, 6, 1, 0, 0, 0, 0, loc), now))
	// Сегодняшний день не считается прошлым, даже поздно вечером
	assert.False(t, isDateInPast(time.Date(2025, 6, 2, 0, 0, 0, 0, loc), now))
	assert.False(t, isDateInPast(time.Date(2025, 6, 3, 0, 0, 0, 0, loc), now))
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBooking(status BookingStatus, end time.Time) *Booking {
	return &Booking{
		ID:        1,
		Status:    status,
		StartTime: end.Add(-30 * time.Minute),
		EndTime:   end,
	}
}

func TestValidateTransition_PendingToConfirmed(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	b := makeBooking(StatusPending, now.Add(2*time.Hour))

	require.NoError(t, ValidateTransition(b, StatusConfirmed, RoleStaff, now))
	require.NoError(t, ValidateTransition(b, StatusConfirmed, RoleOwner, now))

	err := ValidateTransition(b, StatusConfirmed, RoleCustomer, now)
	assert.ErrorIs(t, err, ErrTransitionForbidden)
}

func TestValidateTransition_Cancellation(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	for _, status := range []BookingStatus{StatusPending, StatusConfirmed} {
		b := makeBooking(status, now.Add(2*time.Hour))
		for _, role := range []Role{RoleCustomer, RoleStaff, RoleOwner} {
			assert.NoError(t, ValidateTransition(b, StatusCancelled, role, now),
				"status=%s role=%s", status, role)
		}
	}
}

func TestValidateTransition_CompletedOnlyAfterEnd(t *testing.T) {
	end := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	b := makeBooking(StatusConfirmed, end)

	err := ValidateTransition(b, StatusCompleted, RoleStaff, end.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrNotFinishedYet)

	assert.NoError(t, ValidateTransition(b, StatusCompleted, RoleStaff, end.Add(time.Minute)))

	err = ValidateTransition(b, StatusCompleted, RoleCustomer, end.Add(time.Minute))
	assert.ErrorIs(t, err, ErrTransitionForbidden)
}

func TestValidateTransition_TerminalStatuses(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	completed := makeBooking(StatusCompleted, now.Add(-time.Hour))
	err := ValidateTransition(completed, StatusPending, RoleOwner, now)
	assert.ErrorIs(t, err, ErrTerminalStatus)

	cancelled := makeBooking(StatusCancelled, now.Add(time.Hour))
	err = ValidateTransition(cancelled, StatusConfirmed, RoleStaff, now)
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestValidateTransition_UnknownTransition(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	// pending -> completed минуя confirmed недопустимо
	b := makeBooking(StatusPending, now.Add(-time.Hour))
	err := ValidateTransition(b, StatusCompleted, RoleStaff, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseBookingStatus("in_progress")
	assert.Error(t, err)
}

func TestBookingOverlaps(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	b := &Booking{StartTime: start, EndTime: start.Add(30 * time.Minute)}

	// Частичное пересечение
	assert.True(t, b.Overlaps(start.Add(15*time.Minute), start.Add(45*time.Minute)))
	// Полное вложение
	assert.True(t, b.Overlaps(start.Add(-time.Hour), start.Add(time.Hour)))
	// Граничащие интервалы не пересекаются
	assert.False(t, b.Overlaps(start.Add(30*time.Minute), start.Add(time.Hour)))
	assert.False(t, b.Overlaps(start.Add(-30*time.Minute), start))
}

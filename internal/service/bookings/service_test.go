package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/businessservice"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

const (
	testCustomerID = int64(101)
	testStaffUser  = int64(202)
	testOwnerID    = int64(303)
	testStrangerID = int64(404)
	testStaffID    = int64(7)
	testBusinessID = int64(3)
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		copied := *b
		repo.bookings[b.ID] = &copied
	}
	return repo
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeBookingRepo) GetByStaffWithFilter(_ context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.StaffID != filter.StaffID {
			continue
		}
		if !filter.IncludeInactive && b.IsTerminal() {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := r.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	if reason != "" {
		b.CancellationReason = &reason
	}
	now := time.Now()
	b.CancelledAt = &now
	return nil
}

type fakeCatalog struct{}

func (c *fakeCatalog) GetBusiness(_ context.Context, businessID int64) (*businessservice.Business, error) {
	if businessID != testBusinessID {
		return nil, businessservice.ErrBusinessNotFound
	}
	return &businessservice.Business{
		ID:       testBusinessID,
		Name:     "Detailing Center",
		OwnerID:  testOwnerID,
		Timezone: "Europe/Moscow",
	}, nil
}

func (c *fakeCatalog) GetStaff(_ context.Context, staffID int64) (*businessservice.Staff, error) {
	if staffID != testStaffID {
		return nil, businessservice.ErrStaffNotFound
	}
	return &businessservice.Staff{
		ID:         testStaffID,
		BusinessID: testBusinessID,
		UserID:     testStaffUser,
		Role:       "master",
	}, nil
}

type fixedTime struct {
	now time.Time
}

func (t *fixedTime) Now() time.Time { return t.now }

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, status domain.BookingStatus, start time.Time) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		CustomerID:   testCustomerID,
		StaffID:      testStaffID,
		ServiceID:    1,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Status:       status,
		ServiceName:  "Полировка кузова",
		ServicePrice: 5000,
	}
}

func newTestService(repo *fakeBookingRepo, now time.Time) *Service {
	return NewService(repo, &fakeCatalog{}, &fixedTime{now: now}, &nopLogger{})
}

func TestService_GetByID(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(testBooking(1, domain.StatusPending, start))
	svc := newTestService(repo, start.Add(-time.Hour))

	t.Run("customer sees own booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, testCustomerID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("staff sees booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, testStaffUser)
		require.NoError(t, err)
	})

	t.Run("owner sees booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, testOwnerID)
		require.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, testStrangerID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 999, testCustomerID)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	t.Run("customer cancels pending booking", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(1, domain.StatusPending, start))
		svc := newTestService(repo, start.Add(-2*time.Hour))

		resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
			ActorID:            testCustomerID,
			CancellationReason: "планы изменились",
		})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		require.NotNil(t, resp.CancellationReason)
		assert.Equal(t, "планы изменились", *resp.CancellationReason)
		assert.NotNil(t, resp.CancelledAt)
	})

	t.Run("staff cancels confirmed booking", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(1, domain.StatusConfirmed, start))
		svc := newTestService(repo, start.Add(-2*time.Hour))

		resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{ActorID: testStaffUser})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("cancel is idempotent-safe: second cancel rejected", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(1, domain.StatusCancelled, start))
		svc := newTestService(repo, start.Add(-2*time.Hour))

		_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{ActorID: testCustomerID})
		assert.ErrorIs(t, err, ErrAlreadyTerminal)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(1, domain.StatusCompleted, start))
		svc := newTestService(repo, start.Add(2*time.Hour))

		_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{ActorID: testStaffUser})
		assert.ErrorIs(t, err, ErrAlreadyTerminal)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(1, domain.StatusPending, start))
		svc := newTestService(repo, start.Add(-2*time.Hour))

		_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{ActorID: testStrangerID})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	t.Run("staff confirms pending booking", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(1, domain.StatusPending, start))
		svc := newTestService(repo, start.Add(-2*time.Hour))

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			ActorID: testStaffUser,
			Status:  "confirmed",
		})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(1, domain.StatusPending, start))
		svc := newTestService(repo, start.Add(-2*time.Hour))

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			ActorID: testCustomerID,
			Status:  "confirmed",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("owner completes finished booking", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(1, domain.StatusConfirmed, start))
		svc := newTestService(repo, start.Add(2*time.Hour))

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			ActorID: testOwnerID,
			Status:  "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
	})

	t.Run("cannot complete before end time", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(1, domain.StatusConfirmed, start))
		svc := newTestService(repo, start.Add(30*time.Minute))

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			ActorID: testStaffUser,
			Status:  "completed",
		})
		assert.ErrorIs(t, err, ErrNotFinishedYet)
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(1, domain.StatusPending, start))
		svc := newTestService(repo, start.Add(2*time.Hour))

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			ActorID: testStaffUser,
			Status:  "completed",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := newFakeBookingRepo(testBooking(1, domain.StatusPending, start))
		svc := newTestService(repo, start.Add(-2*time.Hour))

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			ActorID: testStaffUser,
			Status:  "archived",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetCustomerBookings(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(
		testBooking(1, domain.StatusPending, start),
		testBooking(2, domain.StatusCancelled, start.Add(24*time.Hour)),
	)
	svc := newTestService(repo, start)

	t.Run("customer lists own bookings", func(t *testing.T) {
		resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
			ActorID:    testCustomerID,
			CustomerID: testCustomerID,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("status filter applied", func(t *testing.T) {
		status := "pending"
		resp, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
			ActorID:    testCustomerID,
			CustomerID: testCustomerID,
			Status:     &status,
		})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(1), resp.Bookings[0].ID)
	})

	t.Run("foreign customer denied", func(t *testing.T) {
		_, err := svc.GetCustomerBookings(context.Background(), &models.GetCustomerBookingsRequest{
			ActorID:    testStrangerID,
			CustomerID: testCustomerID,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_GetStaffBookings(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo(
		testBooking(1, domain.StatusConfirmed, start),
		testBooking(2, domain.StatusCancelled, start.Add(2*time.Hour)),
	)
	svc := newTestService(repo, start)

	t.Run("staff lists own schedule, terminal excluded by default", func(t *testing.T) {
		resp, err := svc.GetStaffBookings(context.Background(), &models.GetStaffBookingsRequest{
			ActorID: testStaffUser,
			StaffID: testStaffID,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("owner sees schedule with inactive", func(t *testing.T) {
		resp, err := svc.GetStaffBookings(context.Background(), &models.GetStaffBookingsRequest{
			ActorID:         testOwnerID,
			StaffID:         testStaffID,
			IncludeInactive: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("customer denied", func(t *testing.T) {
		_, err := svc.GetStaffBookings(context.Background(), &models.GetStaffBookingsRequest{
			ActorID: testCustomerID,
			StaffID: testStaffID,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

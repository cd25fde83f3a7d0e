package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/businessservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	testCustomerID = int64(101)
	testStaffID    = int64(7)
	testServiceID  = int64(11)
	testBusinessID = int64(3)
)

// fakeBookingStore потокобезопасное in-memory хранилище бронирований
type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{nextID: 1}
}

func (s *fakeBookingStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *booking
	copied.ID = s.nextID
	s.nextID++
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	s.bookings = append(s.bookings, &copied)

	result := copied
	return &result, nil
}

func (s *fakeBookingStore) GetOverlapping(_ context.Context, staffID int64, start, end time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*domain.Booking
	for _, b := range s.bookings {
		if b.StaffID != staffID || !b.IsActive() {
			continue
		}
		if b.Overlaps(start, end) {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (s *fakeBookingStore) cancel(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			b.Status = domain.StatusCancelled
		}
	}
}

func (s *fakeBookingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

type fakeWorkingHoursRepo struct {
	entries []*domain.WorkingHoursEntry
}

func (r *fakeWorkingHoursRepo) GetByStaffAndDay(_ context.Context, staffID int64, dayOfWeek int) ([]*domain.WorkingHoursEntry, error) {
	var result []*domain.WorkingHoursEntry
	for _, e := range r.entries {
		if e.StaffID == staffID && e.DayOfWeek == dayOfWeek {
			result = append(result, e)
		}
	}
	return result, nil
}

type fakeCatalog struct {
	durationMinutes int
	timezone        string
	assigned        bool
}

func (c *fakeCatalog) GetBusiness(_ context.Context, businessID int64) (*businessservice.Business, error) {
	if businessID != testBusinessID {
		return nil, businessservice.ErrBusinessNotFound
	}
	return &businessservice.Business{ID: testBusinessID, Timezone: c.timezone}, nil
}

func (c *fakeCatalog) GetService(_ context.Context, serviceID int64) (*businessservice.Service, error) {
	if serviceID != testServiceID {
		return nil, businessservice.ErrServiceNotFound
	}
	return &businessservice.Service{
		ID:              testServiceID,
		BusinessID:      testBusinessID,
		Name:            "Полировка кузова",
		DurationMinutes: c.durationMinutes,
		Price:           ptr.Ptr(5000.0),
	}, nil
}

func (c *fakeCatalog) GetStaff(_ context.Context, staffID int64) (*businessservice.Staff, error) {
	if staffID != testStaffID {
		return nil, businessservice.ErrStaffNotFound
	}
	staff := &businessservice.Staff{ID: testStaffID, BusinessID: testBusinessID, UserID: 202}
	if c.assigned {
		staff.AssignedServiceIDs = []int64{testServiceID}
	}
	return staff, nil
}

// fakeTxManager сериализует транзакции мьютексом, имитируя границу
// сериализации настоящего transaction manager
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (t *fixedTime) Now() time.Time { return t.now }

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func mondayWindow(start, end string) *domain.WorkingHoursEntry {
	return &domain.WorkingHoursEntry{
		StaffID:   testStaffID,
		DayOfWeek: 1,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

type testEnv struct {
	uc    *UseCase
	store *fakeBookingStore
}

func newTestEnv(policy Policy, now time.Time, windows ...*domain.WorkingHoursEntry) *testEnv {
	store := newFakeBookingStore()
	uc := NewUseCase(
		store,
		&fakeWorkingHoursRepo{entries: windows},
		&fakeCatalog{durationMinutes: 30, timezone: "UTC", assigned: true},
		&fakeTxManager{},
		policy,
		&nopLogger{},
	)
	uc.timeProvider = &fixedTime{now: now}
	return &testEnv{uc: uc, store: store}
}

func TestUseCase_Execute(t *testing.T) {
	// Понедельник 2 июня 2025
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	slotStart := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	baseRequest := func() *Request {
		return &Request{
			CustomerID: testCustomerID,
			StaffID:    testStaffID,
			ServiceID:  testServiceID,
			StartTime:  slotStart,
		}
	}

	t.Run("creates pending booking inside working hours", func(t *testing.T) {
		env := newTestEnv(Policy{AdvanceDays: 30}, now, mondayWindow("09:00", "18:00"))

		resp, err := env.uc.Execute(context.Background(), baseRequest())
		require.NoError(t, err)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, slotStart, resp.StartTime)
		// Конец производный от длительности услуги
		assert.Equal(t, slotStart.Add(30*time.Minute), resp.EndTime)
		assert.Equal(t, "Полировка кузова", resp.ServiceName)
		assert.Equal(t, 5000.0, resp.ServicePrice)
	})

	t.Run("auto confirm policy creates confirmed booking", func(t *testing.T) {
		env := newTestEnv(Policy{AdvanceDays: 30, AutoConfirm: true}, now, mondayWindow("09:00", "18:00"))

		resp, err := env.uc.Execute(context.Background(), baseRequest())
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("overlapping booking rejected", func(t *testing.T) {
		env := newTestEnv(Policy{AdvanceDays: 30}, now, mondayWindow("09:00", "18:00"))

		_, err := env.uc.Execute(context.Background(), baseRequest())
		require.NoError(t, err)

		// 09:45-10:15 пересекается с 10:00-10:30
		req := baseRequest()
		req.StartTime = time.Date(2025, 6, 2, 9, 45, 0, 0, time.UTC)
		_, err = env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("adjacent booking allowed", func(t *testing.T) {
		env := newTestEnv(Policy{AdvanceDays: 30}, now, mondayWindow("09:00", "18:00"))

		_, err := env.uc.Execute(context.Background(), baseRequest())
		require.NoError(t, err)

		// 10:30 начинается ровно в момент окончания предыдущего
		req := baseRequest()
		req.StartTime = slotStart.Add(30 * time.Minute)
		_, err = env.uc.Execute(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("cancelled booking frees the interval", func(t *testing.T) {
		env := newTestEnv(Policy{AdvanceDays: 30}, now, mondayWindow("09:00", "18:00"))

		first, err := env.uc.Execute(context.Background(), baseRequest())
		require.NoError(t, err)

		env.store.cancel(first.ID)

		_, err = env.uc.Execute(context.Background(), baseRequest())
		require.NoError(t, err)
	})

	t.Run("interval must fit inside a single window", func(t *testing.T) {
		// Окно 09:00-10:15: услуга 30 минут с 10:00 не помещается
		env := newTestEnv(Policy{AdvanceDays: 30}, now, mondayWindow("09:00", "10:15"))

		_, err := env.uc.Execute(context.Background(), baseRequest())
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("day without working hours rejected", func(t *testing.T) {
		env := newTestEnv(Policy{AdvanceDays: 30}, now)

		_, err := env.uc.Execute(context.Background(), baseRequest())
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("interval spanning two adjacent windows rejected", func(t *testing.T) {
		env := newTestEnv(Policy{AdvanceDays: 30}, now,
			mondayWindow("09:00", "10:15"),
			mondayWindow("10:15", "12:00"),
		)

		_, err := env.uc.Execute(context.Background(), baseRequest())
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
	})

	t.Run("start time with seconds rejected", func(t *testing.T) {
		// Окно заканчивается в 10:30: старт 10:00:30 дал бы интервал
		// до 10:30:30, который при минутной точности границ выглядел бы
		// помещающимся в окно
		env := newTestEnv(Policy{AdvanceDays: 30}, now, mondayWindow("09:00", "10:30"))

		req := baseRequest()
		req.StartTime = slotStart.Add(30 * time.Second)
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, env.store.count())
	})

	t.Run("start time in the past rejected", func(t *testing.T) {
		env := newTestEnv(Policy{AdvanceDays: 30}, now, mondayWindow("09:00", "18:00"))

		req := baseRequest()
		req.StartTime = now.Add(-time.Hour)
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPastBooking)
	})

	t.Run("min notice enforced", func(t *testing.T) {
		env := newTestEnv(Policy{MinNoticeMinutes: 120, AdvanceDays: 30},
			time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			mondayWindow("09:00", "18:00"),
		)

		// Старт через час при требуемых двух
		_, err := env.uc.Execute(context.Background(), baseRequest())
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("advance days enforced", func(t *testing.T) {
		env := newTestEnv(Policy{AdvanceDays: 7}, now, mondayWindow("09:00", "18:00"))

		req := baseRequest()
		req.StartTime = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("unknown staff", func(t *testing.T) {
		env := newTestEnv(Policy{AdvanceDays: 30}, now, mondayWindow("09:00", "18:00"))

		req := baseRequest()
		req.StaffID = 999
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("notes too long rejected", func(t *testing.T) {
		env := newTestEnv(Policy{AdvanceDays: 30}, now, mondayWindow("09:00", "18:00"))

		long := make([]byte, domain.MaxNotesLength+1)
		for i := range long {
			long[i] = 'a'
		}
		req := baseRequest()
		req.Notes = ptr.Ptr(string(long))
		_, err := env.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUseCase_Execute_ConcurrentSameSlot(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	slotStart := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	env := newTestEnv(Policy{AdvanceDays: 30}, now, mondayWindow("09:00", "18:00"))

	const attempts = 20

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.uc.Execute(context.Background(), &Request{
				CustomerID: testCustomerID + int64(i),
				StaffID:    testStaffID,
				ServiceID:  testServiceID,
				StartTime:  slotStart,
			})
			errs[i] = err
		}(i)
	}
	wg.Wait()

	// Ровно одно бронирование проходит, остальные получают конфликт
	var succeeded, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrSlotTaken):
			conflicts++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, 1, env.store.count())
}

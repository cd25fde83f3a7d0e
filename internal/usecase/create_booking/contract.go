package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/businessservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetOverlapping возвращает активные бронирования сотрудника, пересекающиеся
	// с интервалом; внутри транзакции блокирует строки (FOR UPDATE)
	GetOverlapping(ctx context.Context, staffID int64, start, end time.Time) ([]*domain.Booking, error)
}

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	GetByStaffAndDay(ctx context.Context, staffID int64, dayOfWeek int) ([]*domain.WorkingHoursEntry, error)
}

// CatalogClient интерфейс клиента каталога бизнесов
type CatalogClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*businessservice.Business, error)
	GetService(ctx context.Context, serviceID int64) (*businessservice.Service, error)
	GetStaff(ctx context.Context, staffID int64) (*businessservice.Staff, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/businessservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByStaffAndInterval получает активные бронирования сотрудника в интервале [from, to)
	GetByStaffAndInterval(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.Booking, error)
}

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	// GetByStaffAndDay получает окна рабочих часов сотрудника на день недели
	GetByStaffAndDay(ctx context.Context, staffID int64, dayOfWeek int) ([]*domain.WorkingHoursEntry, error)
}

// CatalogClient интерфейс клиента каталога бизнесов
type CatalogClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*businessservice.Business, error)
	GetService(ctx context.Context, serviceID int64) (*businessservice.Service, error)
	GetStaff(ctx context.Context, staffID int64) (*businessservice.Staff, error)
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

package workinghours

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/businessservice"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	Create(ctx context.Context, entry *domain.WorkingHoursEntry) (*domain.WorkingHoursEntry, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkingHoursEntry, error)
	GetByStaffID(ctx context.Context, staffID int64) ([]*domain.WorkingHoursEntry, error)
	GetByStaffAndDay(ctx context.Context, staffID int64, dayOfWeek int) ([]*domain.WorkingHoursEntry, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogClient интерфейс клиента каталога бизнесов
type CatalogClient interface {
	GetBusiness(ctx context.Context, businessID int64) (*businessservice.Business, error)
	GetStaff(ctx context.Context, staffID int64) (*businessservice.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

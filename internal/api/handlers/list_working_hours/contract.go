package list_working_hours

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	ListFor(ctx context.Context, staffID int64) (*models.EntryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

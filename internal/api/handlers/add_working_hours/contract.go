package add_working_hours

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	Add(ctx context.Context, req *models.AddEntryRequest) (*models.EntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

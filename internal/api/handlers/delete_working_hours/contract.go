package delete_working_hours

import "context"

type WorkingHoursService interface {
	Remove(ctx context.Context, entryID, actorID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

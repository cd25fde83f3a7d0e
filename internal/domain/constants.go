package domain

// Default booking policy values
const (
	DefaultSlotStepMinutes  = 30
	DefaultMinNoticeMinutes = 0
	DefaultAdvanceDays      = 0 // 0 = unlimited
)

// Business validation constants
const (
	MinSlotStepMinutes          = 5
	MaxSlotStepMinutes          = 480 // 8 hours
	MinDayOfWeek                = 0   // Sunday
	MaxDayOfWeek                = 6   // Saturday
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование занимает свой интервал
// Используется при подсчёте доступных слотов и проверке пересечений
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses статусы, из которых нет дальнейших переходов
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

package add_working_hours

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/workinghours/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AddWorkingHoursRequest HTTP request model
type AddWorkingHoursRequest struct {
	StaffID   int64  `json:"staffId"`
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье, 6 = суббота
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddWorkingHoursRequest) ToServiceRequest(actorID int64) *models.AddEntryRequest {
	return &models.AddEntryRequest{
		ActorID:   actorID,
		StaffID:   r.StaffID,
		DayOfWeek: r.DayOfWeek,
		StartTime: types.TimeString(r.StartTime),
		EndTime:   types.TimeString(r.EndTime),
	}
}

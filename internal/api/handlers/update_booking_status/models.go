package update_booking_status

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // confirmed / cancelled / completed
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(actorID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		ActorID: actorID,
		Status:  r.Status,
	}
}

package cancel_booking

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
// Тело запроса опционально
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(actorID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		ActorID:            actorID,
		CancellationReason: r.CancellationReason,
	}
}

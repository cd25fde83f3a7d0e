package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	ActorID            int64  // ID пользователя, выполняющего отмену
	CancellationReason string // Причина отмены (опционально)
}

// UpdateStatusRequest запрос на переход статуса бронирования
type UpdateStatusRequest struct {
	ActorID int64  // ID пользователя, выполняющего переход
	Status  string // Целевой статус
}

// GetCustomerBookingsRequest запрос на получение бронирований клиента
type GetCustomerBookingsRequest struct {
	ActorID    int64
	CustomerID int64
	Status     *string
}

// GetStaffBookingsRequest запрос на получение бронирований сотрудника
type GetStaffBookingsRequest struct {
	ActorID         int64
	StaffID         int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// Response модели

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
	ID                 int64     `json:"id"`
	CustomerID         int64     `json:"customerId"`
	StaffID            int64     `json:"staffId"`
	ServiceID          int64     `json:"serviceId"`
	StartTime          time.Time `json:"startTime"`
	EndTime            time.Time `json:"endTime"`
	Status             string    `json:"status"`
	ServiceName        string    `json:"serviceName"`
	ServicePrice       float64   `json:"servicePrice"`
	Notes              *string   `json:"notes,omitempty"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		StaffID:            b.StaffID,
		ServiceID:          b.ServiceID,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Status:             string(b.Status),
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *GetStaffBookingsRequest) ToDomainFilter() (domain.StaffBookingsFilter, error) {
	filter := domain.StaffBookingsFilter{
		StaffID:         r.StaffID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return domain.StaffBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

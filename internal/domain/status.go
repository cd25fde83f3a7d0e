package domain

import (
	"errors"
	"time"
)

// Role роль актора, выполняющего операцию над бронированием
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleOwner    Role = "owner"
)

var (
	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrTerminalStatus возвращается при попытке перехода из терминального статуса
	ErrTerminalStatus = errors.New("booking status is terminal")

	// ErrTransitionForbidden возвращается, когда роль актора не допускает переход
	ErrTransitionForbidden = errors.New("actor role is not allowed to perform this transition")

	// ErrNotFinishedYet возвращается при попытке завершить бронирование до его окончания
	ErrNotFinishedYet = errors.New("booking cannot be completed before its end time")
)

// transitions таблица допустимых переходов: текущий статус -> целевой статус -> роли
// Статусы переходят монотонно; cancelled и completed - терминальные
var transitions = map[BookingStatus]map[BookingStatus][]Role{
	StatusPending: {
		StatusConfirmed: {RoleStaff, RoleOwner},
		StatusCancelled: {RoleCustomer, RoleStaff, RoleOwner},
	},
	StatusConfirmed: {
		StatusCancelled: {RoleCustomer, RoleStaff, RoleOwner},
		StatusCompleted: {RoleStaff, RoleOwner},
	},
}

// ValidateTransition проверяет допустимость перехода статуса бронирования
// Порядок проверок: терминальность -> существование перехода -> роль -> временные условия
func ValidateTransition(booking *Booking, to BookingStatus, role Role, now time.Time) error {
	if booking.IsTerminal() {
		return ErrTerminalStatus
	}

	allowed, ok := transitions[booking.Status][to]
	if !ok {
		return ErrInvalidTransition
	}

	roleAllowed := false
	for _, r := range allowed {
		if r == role {
			roleAllowed = true
			break
		}
	}
	if !roleAllowed {
		return ErrTransitionForbidden
	}

	// Завершить можно только после фактического окончания
	if to == StatusCompleted && now.Before(booking.EndTime) {
		return ErrNotFinishedYet
	}

	return nil
}

// ParseBookingStatus парсит статус из строки
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return BookingStatus(s), nil
	default:
		return "", errors.New("unknown booking status: " + s)
	}
}

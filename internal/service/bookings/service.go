package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/businessservice"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

// Service сервис управления бронированиями: чтение, отмена, переходы статусов
type Service struct {
	repo    BookingRepository
	catalog CatalogClient
	time    TimeProvider
	logger  Logger
}

func NewService(repo BookingRepository, catalog CatalogClient, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		time:    timeProvider,
		logger:  logger,
	}
}

// GetByID возвращает бронирование по ID
// Доступ: клиент бронирования, сотрудник бронирования или владелец бизнеса
func (s *Service) GetByID(ctx context.Context, bookingID, actorID int64) (*models.BookingResponse, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveRole(ctx, b, actorID); err != nil {
		return nil, err
	}

	return models.FromDomainBooking(b), nil
}

// GetCustomerBookings возвращает бронирования клиента
// Клиент видит только свои бронирования
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	if req.ActorID != req.CustomerID {
		s.logger.Warn("GetCustomerBookings: access denied: actor %d requested bookings of customer %d", req.ActorID, req.CustomerID)
		return nil, ErrAccessDenied
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		parsed, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		status = &parsed
	}

	bookings, err := s.repo.GetByCustomerID(ctx, req.CustomerID, status)
	if err != nil {
		return nil, s.mapStoreErr("GetCustomerBookings", err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetStaffBookings возвращает бронирования сотрудника за интервал
// Доступ: сам сотрудник или владелец бизнеса
func (s *Service) GetStaffBookings(ctx context.Context, req *models.GetStaffBookingsRequest) (*models.BookingListResponse, error) {
	staff, err := s.catalog.GetStaff(ctx, req.StaffID)
	if err != nil {
		return nil, s.mapCatalogErr("GetStaffBookings", err)
	}

	if staff.UserID != req.ActorID {
		business, err := s.catalog.GetBusiness(ctx, staff.BusinessID)
		if err != nil {
			return nil, s.mapCatalogErr("GetStaffBookings", err)
		}
		if business.OwnerID != req.ActorID {
			s.logger.Warn("GetStaffBookings: access denied: actor %d requested bookings of staff %d", req.ActorID, req.StaffID)
			return nil, ErrAccessDenied
		}
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.repo.GetByStaffWithFilter(ctx, filter)
	if err != nil {
		return nil, s.mapStoreErr("GetStaffBookings", err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отмена - переход статуса в cancelled, запись остаётся в хранилище
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	role, err := s.resolveRole(ctx, b, req.ActorID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateTransition(b, domain.StatusCancelled, role, s.time.Now()); err != nil {
		return nil, s.mapTransitionErr("Cancel", bookingID, err)
	}

	if err := s.repo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		return nil, s.mapStoreErr("Cancel", err)
	}

	s.logger.Info("Cancel: booking %d cancelled by actor %d (role %s)", bookingID, req.ActorID, role)

	updated, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(updated), nil
}

// UpdateStatus выполняет переход статуса бронирования
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	target, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	role, err := s.resolveRole(ctx, b, req.ActorID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateTransition(b, target, role, s.time.Now()); err != nil {
		return nil, s.mapTransitionErr("UpdateStatus", bookingID, err)
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, target); err != nil {
		return nil, s.mapStoreErr("UpdateStatus", err)
	}

	s.logger.Info("UpdateStatus: booking %d moved to %s by actor %d (role %s)", bookingID, target, req.ActorID, role)

	updated, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(updated), nil
}

func (s *Service) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, s.mapStoreErr("getBooking", err)
	}
	return b, nil
}

// resolveRole определяет роль актора относительно бронирования
// Порядок: клиент -> сотрудник -> владелец бизнеса
func (s *Service) resolveRole(ctx context.Context, b *domain.Booking, actorID int64) (domain.Role, error) {
	if b.CustomerID == actorID {
		return domain.RoleCustomer, nil
	}

	staff, err := s.catalog.GetStaff(ctx, b.StaffID)
	if err != nil {
		return "", s.mapCatalogErr("resolveRole", err)
	}
	if staff.UserID == actorID {
		return domain.RoleStaff, nil
	}

	business, err := s.catalog.GetBusiness(ctx, staff.BusinessID)
	if err != nil {
		return "", s.mapCatalogErr("resolveRole", err)
	}
	if business.OwnerID == actorID {
		return domain.RoleOwner, nil
	}

	s.logger.Warn("resolveRole: access denied: actor %d has no role for booking %d", actorID, b.ID)
	return "", ErrAccessDenied
}

func (s *Service) mapTransitionErr(op string, bookingID int64, err error) error {
	switch {
	case errors.Is(err, domain.ErrTerminalStatus):
		s.logger.Warn("%s: booking %d is in terminal status", op, bookingID)
		return ErrAlreadyTerminal
	case errors.Is(err, domain.ErrTransitionForbidden):
		return ErrAccessDenied
	case errors.Is(err, domain.ErrNotFinishedYet):
		return ErrNotFinishedYet
	case errors.Is(err, domain.ErrInvalidTransition):
		return ErrInvalidTransition
	default:
		return ErrInternal
	}
}

func (s *Service) mapStoreErr(op string, err error) error {
	if errors.Is(err, booking.ErrStoreUnavailable) {
		s.logger.Warn("%s: store unavailable: %v", op, err)
		return ErrStoreUnavailable
	}
	s.logger.Error("%s: storage error: %v", op, err)
	return ErrInternal
}

func (s *Service) mapCatalogErr(op string, err error) error {
	switch {
	case errors.Is(err, businessservice.ErrStaffNotFound),
		errors.Is(err, businessservice.ErrBusinessNotFound):
		s.logger.Warn("%s: catalog entity not found: %v", op, err)
		return ErrBookingNotFound
	default:
		s.logger.Error("%s: catalog error: %v", op, err)
		return ErrInternal
	}
}

package workinghours

import (
	"context"
	"errors"
	"fmt"

	storage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/businessservice"
	"github.com/m04kA/SMC-AppointmentService/internal/service/workinghours/models"
)

// Service сервис управления недельным шаблоном рабочих часов сотрудников
type Service struct {
	repo    WorkingHoursRepository
	catalog CatalogClient
	logger  Logger
}

func NewService(repo WorkingHoursRepository, catalog CatalogClient, logger Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// Add добавляет окно рабочих часов в шаблон сотрудника
// Доступ: сам сотрудник или владелец бизнеса
func (s *Service) Add(ctx context.Context, req *models.AddEntryRequest) (*models.EntryResponse, error) {
	if err := s.validateEntry(req); err != nil {
		return nil, err
	}

	if err := s.checkStaffAccess(ctx, req.StaffID, req.ActorID); err != nil {
		return nil, err
	}

	entry := req.ToDomain()

	// Пересечение проверяем только с окнами того же дня
	existing, err := s.repo.GetByStaffAndDay(ctx, req.StaffID, req.DayOfWeek)
	if err != nil {
		return nil, s.mapStoreErr("Add", err)
	}
	for _, other := range existing {
		if entry.OverlapsWith(other) {
			s.logger.Warn("Add: window %s-%s overlaps entry %d for staff %d", req.StartTime, req.EndTime, other.ID, req.StaffID)
			return nil, ErrOverlap
		}
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		// Конкурирующая вставка могла пройти проверку одновременно с нами:
		// нарушение exclusion constraint - тот же конфликт окон
		if errors.Is(err, storage.ErrOverlap) {
			s.logger.Warn("Add: window %s-%s lost insert race for staff %d: %v", req.StartTime, req.EndTime, req.StaffID, err)
			return nil, ErrOverlap
		}
		return nil, s.mapStoreErr("Add", err)
	}

	s.logger.Info("Add: working hours entry %d created for staff %d (day %d, %s-%s)",
		created.ID, created.StaffID, created.DayOfWeek, created.StartTime, created.EndTime)

	return models.FromDomainEntry(created), nil
}

// Remove удаляет окно рабочих часов
// Уже созданные бронирования при этом не затрагиваются
func (s *Service) Remove(ctx context.Context, entryID, actorID int64) error {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		return s.mapStoreErr("Remove", err)
	}

	if err := s.checkStaffAccess(ctx, entry.StaffID, actorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, entryID); err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		return s.mapStoreErr("Remove", err)
	}

	s.logger.Info("Remove: working hours entry %d deleted by actor %d", entryID, actorID)
	return nil
}

// ListFor возвращает недельный шаблон рабочих часов сотрудника
func (s *Service) ListFor(ctx context.Context, staffID int64) (*models.EntryListResponse, error) {
	if _, err := s.catalog.GetStaff(ctx, staffID); err != nil {
		return nil, s.mapCatalogErr("ListFor", err)
	}

	entries, err := s.repo.GetByStaffID(ctx, staffID)
	if err != nil {
		return nil, s.mapStoreErr("ListFor", err)
	}

	return models.FromDomainEntryList(staffID, entries), nil
}

func (s *Service) validateEntry(req *models.AddEntryRequest) error {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return fmt.Errorf("%w: day of week must be in [0, 6], got %d", ErrInvalidInput, req.DayOfWeek)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}
	if !req.ToDomain().IsValidRange() {
		return ErrInvalidRange
	}
	return nil
}

// checkStaffAccess проверяет, что актор - сам сотрудник или владелец бизнеса
func (s *Service) checkStaffAccess(ctx context.Context, staffID, actorID int64) error {
	staff, err := s.catalog.GetStaff(ctx, staffID)
	if err != nil {
		return s.mapCatalogErr("checkStaffAccess", err)
	}
	if staff.UserID == actorID {
		return nil
	}

	business, err := s.catalog.GetBusiness(ctx, staff.BusinessID)
	if err != nil {
		return s.mapCatalogErr("checkStaffAccess", err)
	}
	if business.OwnerID == actorID {
		return nil
	}

	s.logger.Warn("checkStaffAccess: access denied: actor %d is neither staff %d nor business owner", actorID, staffID)
	return ErrAccessDenied
}

func (s *Service) mapStoreErr(op string, err error) error {
	if errors.Is(err, storage.ErrStoreUnavailable) {
		s.logger.Warn("%s: store unavailable: %v", op, err)
		return ErrStoreUnavailable
	}
	s.logger.Error("%s: storage error: %v", op, err)
	return ErrInternal
}

func (s *Service) mapCatalogErr(op string, err error) error {
	switch {
	case errors.Is(err, businessservice.ErrStaffNotFound):
		return ErrStaffNotFound
	case errors.Is(err, businessservice.ErrBusinessNotFound):
		s.logger.Warn("%s: business not found: %v", op, err)
		return ErrStaffNotFound
	default:
		s.logger.Error("%s: catalog error: %v", op, err)
		return ErrInternal
	}
}

package models

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AddEntryRequest запрос на добавление окна рабочих часов
type AddEntryRequest struct {
	ActorID   int64
	StaffID   int64            `json:"staffId"`
	DayOfWeek int              `json:"dayOfWeek"` // 0 = воскресенье, 6 = суббота
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// ToDomain конвертирует запрос в domain-модель
func (r *AddEntryRequest) ToDomain() *domain.WorkingHoursEntry {
	return &domain.WorkingHoursEntry{
		StaffID:   r.StaffID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// EntryResponse окно рабочих часов в ответе сервиса
type EntryResponse struct {
	ID        int64            `json:"id"`
	StaffID   int64            `json:"staffId"`
	DayOfWeek int              `json:"dayOfWeek"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// EntryListResponse недельный шаблон рабочих часов сотрудника
type EntryListResponse struct {
	StaffID int64            `json:"staffId"`
	Entries []*EntryResponse `json:"entries"`
}

// FromDomainEntry конвертирует domain-модель в ответ
func FromDomainEntry(e *domain.WorkingHoursEntry) *EntryResponse {
	return &EntryResponse{
		ID:        e.ID,
		StaffID:   e.StaffID,
		DayOfWeek: e.DayOfWeek,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
	}
}

// FromDomainEntryList конвертирует список окон в недельный шаблон
func FromDomainEntryList(staffID int64, entries []*domain.WorkingHoursEntry) *EntryListResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = FromDomainEntry(e)
	}
	return &EntryListResponse{
		StaffID: staffID,
		Entries: result,
	}
}

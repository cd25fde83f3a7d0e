package businessservice

// Business бизнес-аккаунт: владелец и авторитетная таймзона
type Business struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	OwnerID  int64  `json:"ownerId"`
	Timezone string `json:"timezone"` // IANA, например "Europe/Moscow"
}

// Service услуга бизнеса
type Service struct {
	ID              int64    `json:"id"`
	BusinessID      int64    `json:"businessId"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
}

// Staff сотрудник бизнеса
type Staff struct {
	ID                 int64   `json:"id"`
	BusinessID         int64   `json:"businessId"`
	UserID             int64   `json:"userId"`
	Role               string  `json:"role"`
	AssignedServiceIDs []int64 `json:"assignedServiceIds"`
}

// ProvidesService проверяет, что услуга назначена сотруднику
func (s *Staff) ProvidesService(serviceID int64) bool {
	for _, id := range s.AssignedServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

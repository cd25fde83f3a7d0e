package domain

import "time"

// Slot represents a candidate bookable start time for a service/staff/day
type Slot struct {
	StartTime       time.Time
	DurationMinutes int
}

// End returns the slot's derived end time
func (s *Slot) End() time.Time {
	return s.StartTime.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM (24 часа)
const TimeFormat = "15:04"

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате строки времени
	ErrInvalidTimeFormat = errors.New("invalid time string format, expected HH:MM")

	// ErrNegativeMinutes возвращается при попытке прибавить отрицательное количество минут
	ErrNegativeMinutes = errors.New("minutes must be non-negative")
)

// TimeString время дня в формате "HH:MM"
// Используется для границ рабочих часов и времени начала слотов
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
// "24:00" допускается как граница конца суток
func (t TimeString) Validate() error {
	if t == "24:00" {
		return nil
	}
	if len(t) != 5 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от полуночи
// "24:00" допускается как граница конца суток (результат AddMinutes)
func (t TimeString) Minutes() (int, error) {
	if t == "24:00" {
		return 24 * 60, nil
	}
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения считаются равными (сравнение не паникует)
func (t TimeString) IsBefore(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a > b
}

// AddMinutes прибавляет указанное количество минут
// Результат за пределами суток не нормализуется: "23:30" + 60 = "24:30" недопустимо,
// поэтому переполнение считается ошибкой
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if minutes < 0 {
		return "", ErrNegativeMinutes
	}

	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total > 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is past midnight", ErrInvalidTimeFormat, string(t), minutes)
	}

	// Граница конца суток
	if total == 24*60 {
		return "24:00", nil
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// OnDate совмещает время дня с датой в указанной локации
func (t TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает string, []byte и time.Time (колонки типа TIME)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeFormat, src)
	}

	// Postgres TIME приходит как "10:00:00" - обрезаем секунды
	if len(*t) == 8 {
		*t = (*t)[:5]
	}

	return t.Validate()
}

// MarshalJSON сериализует значение как строку "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON десериализует значение из строки с валидацией
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

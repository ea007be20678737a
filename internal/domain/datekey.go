package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateKey возвращается, когда строка не является датой в формате YYYY-MM-DD
var ErrInvalidDateKey = errors.New("domain: invalid date key")

// DateKey календарная дата в формате YYYY-MM-DD
// Единственный ключ партиционирования доступности по датам
type DateKey string

// NewDateKey нормализует момент времени к календарной дате в его собственной локации
// Два момента одного календарного дня всегда дают одинаковый ключ
func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(DateFormat))
}

// ParseDateKey валидирует строку из транспорта
// Принимается только каноничная запись (2024-06-10, но не 2024-6-10)
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	if t.Format(DateFormat) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	return DateKey(s), nil
}

// Time возвращает полночь даты в указанной локации
func (k DateKey) Time(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, string(k), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, string(k))
	}
	return t, nil
}

func (k DateKey) String() string {
	return string(k)
}

package get_availability

import "errors"

var (
	// ErrInvalidDateKey возвращается при некорректной дате
	ErrInvalidDateKey = errors.New("get_availability: invalid date key")

	// ErrProfessionalNotFound возвращается, когда специалист не найден в справочнике
	ErrProfessionalNotFound = errors.New("get_availability: professional not found")

	// ErrUnavailable возвращается, когда ledger недоступен
	ErrUnavailable = errors.New("get_availability: ledger unavailable")
)

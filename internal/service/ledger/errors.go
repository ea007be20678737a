package ledger

import "errors"

var (
	// ErrConflict возвращается, когда слот уже забронирован или блокировка уже существует
	ErrConflict = errors.New("ledger.service: conflict")

	// ErrNotFound возвращается при удалении несуществующей записи
	ErrNotFound = errors.New("ledger.service: not found")

	// ErrUnavailable возвращается, когда хранилище недоступно
	ErrUnavailable = errors.New("ledger.service: store unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("ledger.service: invalid input")
)

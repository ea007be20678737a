package ledgerclient

import (
	"errors"

	"github.com/m04kA/SMC-ReservationService/internal/service/ledger"
)

// Ошибки ledger переиспользуются, чтобы вызывающий код одинаково
// обрабатывал локальный сервис и удаленный API
var (
	// ErrConflict HTTP 409
	ErrConflict = ledger.ErrConflict

	// ErrNotFound HTTP 404
	ErrNotFound = ledger.ErrNotFound

	// ErrInvalidInput HTTP 400
	ErrInvalidInput = ledger.ErrInvalidInput

	// ErrUnavailable HTTP 5xx, сетевые ошибки и таймауты
	ErrUnavailable = ledger.ErrUnavailable
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("ledgerclient: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("ledgerclient: invalid response")
)

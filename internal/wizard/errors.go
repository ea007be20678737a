package wizard

import "errors"

var (
	// ErrNotReady действие недоступно на текущем шаге
	ErrNotReady = errors.New("wizard: not ready")

	// ErrSlotTaken слот занят другой сессией; мастер вернулся к выбору даты и времени
	ErrSlotTaken = errors.New("wizard: slot already taken")

	// ErrRetryable ledger недоступен; шаг подтверждения сохранен, можно повторить
	ErrRetryable = errors.New("wizard: ledger unavailable, retry")

	// ErrRejected ledger отклонил бронирование по иной причине
	ErrRejected = errors.New("wizard: reservation rejected")
)

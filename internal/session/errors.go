package session

import "errors"

var (
	// ErrInvalidIdentity возвращается при попытке сохранить неполный профиль
	ErrInvalidIdentity = errors.New("session: invalid identity")

	// ErrMalformedLocalState сохраненный профиль не читается; наружу из Load не возвращается
	ErrMalformedLocalState = errors.New("session: malformed local state")

	// ErrStore возвращается при ошибке записи в хранилище
	ErrStore = errors.New("session: store error")
)

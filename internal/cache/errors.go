package cache

import "errors"

var (
	// ErrMalformedLocalState возвращается, когда сохраненная запись кеша не читается
	// Наружу из Cache не возвращается: запись считается пустой
	ErrMalformedLocalState = errors.New("cache: malformed local state")

	// ErrStore возвращается при ошибке записи в хранилище
	ErrStore = errors.New("cache: store error")
)

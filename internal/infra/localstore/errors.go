package localstore

import "errors"

var (
	// ErrNotFound возвращается, когда запись отсутствует
	ErrNotFound = errors.New("localstore: entry not found")

	// ErrInvalidKey возвращается при недопустимом ключе записи
	ErrInvalidKey = errors.New("localstore: invalid key")

	// ErrStore возвращается при ошибке чтения или записи хранилища
	ErrStore = errors.New("localstore: store error")
)

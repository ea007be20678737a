package catalog

import "errors"

var (
	// ErrEmptyCatalog возвращается, когда в справочнике нет услуг, специалистов или слотов
	ErrEmptyCatalog = errors.New("catalog: empty catalog")

	// ErrDuplicateID возвращается при повторяющемся идентификаторе
	ErrDuplicateID = errors.New("catalog: duplicate id")

	// ErrInvalidSlotTime возвращается при некорректном времени слота (ожидается HH:MM)
	ErrInvalidSlotTime = errors.New("catalog: invalid slot time")

	// ErrInvalidService возвращается при некорректных данных услуги
	ErrInvalidService = errors.New("catalog: invalid service")

	// ErrLoadFile возвращается при ошибке чтения файла справочника
	ErrLoadFile = errors.New("catalog: failed to load file")
)

package userservice

import "errors"

var (
	// ErrInvalidCredentials возвращается, когда логин или пароль не подошли
	ErrInvalidCredentials = errors.New("userservice client: invalid credentials")

	// ErrUnavailable возвращается, когда провайдер недоступен
	ErrUnavailable = errors.New("userservice client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")
)

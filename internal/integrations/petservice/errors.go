package petservice

import "errors"

var (
	// ErrDogNotFound возвращается, когда собака не найдена в PetService
	ErrDogNotFound = errors.New("petservice client: dog not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("petservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("petservice client: invalid response")
)

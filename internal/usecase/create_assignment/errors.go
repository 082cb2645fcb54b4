package create_assignment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_assignment: invalid input data")

	// ErrDogNotFound возвращается, когда собака не найдена в PetService
	ErrDogNotFound = errors.New("create_assignment: dog not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_assignment: internal error")
)

package routines

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("routines: invalid input data")

	// ErrDogNotFound возвращается, когда собака не найдена в PetService
	ErrDogNotFound = errors.New("routines: dog not found")

	// ErrRoutineNotFound возвращается, когда рутина собаки не настроена
	ErrRoutineNotFound = errors.New("routines: routine not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("routines: internal error")
)

package billingsync

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("billingsync: invalid input data")

	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("billingsync: assignment not found")

	// ErrNotCompleted возвращается при попытке синхронизировать незавершенную прогулку
	ErrNotCompleted = errors.New("billingsync: assignment is not completed")

	// ErrDogNotFound возвращается, когда собака не найдена в PetService
	ErrDogNotFound = errors.New("billingsync: dog not found")

	// ErrUnknownWalkType возвращается, когда для типа прогулки нет тарифа
	ErrUnknownWalkType = errors.New("billingsync: no tariff for walk type")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("billingsync: internal error")
)

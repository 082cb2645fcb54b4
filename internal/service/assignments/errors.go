package assignments

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assignments: invalid input data")

	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("assignments: assignment not found")

	// ErrCompletedImmutable возвращается при попытке удалить завершенную прогулку:
	// по ней уже могла уйти строка в биллинг
	ErrCompletedImmutable = errors.New("assignments: completed assignment cannot be removed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("assignments: internal error")
)

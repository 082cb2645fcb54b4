package complete_assignment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_assignment: invalid input data")

	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("complete_assignment: assignment not found")

	// ErrAlreadyCompleted возвращается при повторной попытке завершить прогулку
	ErrAlreadyCompleted = errors.New("complete_assignment: assignment already completed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_assignment: internal error")
)

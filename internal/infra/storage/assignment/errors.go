package assignment

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда назначение не найдено
	ErrAssignmentNotFound = errors.New("assignment.repository: assignment not found")

	// ErrDuplicateAssignment возвращается при нарушении уникальности (dog, slot, year, week)
	ErrDuplicateAssignment = errors.New("assignment.repository: assignment already exists")

	// ErrAlreadyCompleted возвращается при повторной попытке завершить прогулку
	ErrAlreadyCompleted = errors.New("assignment.repository: assignment already completed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("assignment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("assignment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("assignment.repository: failed to scan row")
)

package routine

import "errors"

var (
	// ErrRoutineNotFound возвращается, когда рутина собаки не настроена
	ErrRoutineNotFound = errors.New("routine.repository: dog routine not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("routine.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("routine.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("routine.repository: failed to scan row")
)

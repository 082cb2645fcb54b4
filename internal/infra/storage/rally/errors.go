package rally

import "errors"

var (
	// ErrRallyNotFound возвращается, когда поход не найден
	ErrRallyNotFound = errors.New("rally.repository: rally event not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rally.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rally.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rally.repository: failed to scan row")
)

package slots

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда шаблон слота не найден
	ErrTemplateNotFound = errors.New("slots.repository: slot template not found")

	// ErrOverrideNotFound возвращается, когда оверрайд недели не найден
	ErrOverrideNotFound = errors.New("slots.repository: week override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slots.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slots.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slots.repository: failed to scan row")
)

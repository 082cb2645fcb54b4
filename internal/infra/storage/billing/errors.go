package billing

import "errors"

var (
	// ErrRecordNotFound возвращается, когда строка биллинга не найдена
	ErrRecordNotFound = errors.New("billing.repository: billable record not found")

	// ErrDuplicateRecord возвращается при нарушении уникальности натурального ключа
	// (dog_id, service_date, start_time)
	ErrDuplicateRecord = errors.New("billing.repository: billable record already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("billing.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("billing.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("billing.repository: failed to scan row")
)

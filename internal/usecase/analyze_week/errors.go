package analyze_week

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном годе или номере недели
	ErrInvalidInput = errors.New("analyze_week: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("analyze_week: internal error")
)

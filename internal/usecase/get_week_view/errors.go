package get_week_view

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном годе или номере недели
	ErrInvalidInput = errors.New("get_week_view: invalid input data")

	// ErrDogDataUnavailable возвращается, когда PetService недоступен
	// Агрегатор работает в режиме fail-closed: без данных о собаках неделя не отдается
	ErrDogDataUnavailable = errors.New("get_week_view: dog data unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_week_view: internal error")
)

package create_rally

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_rally: invalid input data")

	// ErrInvalidStartBlock возвращается, когда поход начинается в последнем
	// блоке дня: для второго блока не остается места
	ErrInvalidStartBlock = errors.New("create_rally: rally cannot start in the last block")

	// ErrTooManyParticipants возвращается при превышении емкости похода
	ErrTooManyParticipants = errors.New("create_rally: too many participants")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_rally: internal error")
)

package auto_assign

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auto_assign: invalid input data")

	// ErrNoRoutineConfigured возвращается, когда у собаки нет настроенной рутины
	ErrNoRoutineConfigured = errors.New("auto_assign: dog has no routine configured")

	// ErrManualAssignmentRequired возвращается для тарифа PONCTUEL:
	// разовые прогулки назначаются только вручную
	ErrManualAssignmentRequired = errors.New("auto_assign: on-demand tier requires manual assignment")

	// ErrNoAvailableSlots возвращается, когда квота не закрыта и ни один слот не подошел
	ErrNoAvailableSlots = errors.New("auto_assign: no available slots")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("auto_assign: internal error")
)

package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrIllegalTransition возвращается, когда целевой статус недостижим
	// из текущего. Признак ошибки в логике вызывающей стороны - таблица
	// переходов фиксирована
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrForbidden возвращается, когда роль актора не допускает переход
	// или актор не связан с этой записью
	ErrForbidden = errors.New("actor is not allowed to perform this transition")

	// ErrConflict возвращается, когда запись уже изменена другим актором
	// (не совпала версия). Клиенту следует перечитать запись
	ErrConflict = errors.New("appointment was modified concurrently")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidRole возвращается при неизвестной роли актора
	ErrInvalidRole = errors.New("invalid actor role")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

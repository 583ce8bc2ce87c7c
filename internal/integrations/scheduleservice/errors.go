package scheduleservice

import "errors"

var (
	// ErrConflictingBooking возвращается, когда у тренера уже есть запись
	// на пересекающееся время. Детали проверки - ответственность ScheduleService,
	// текст его ответа не разбирается
	ErrConflictingBooking = errors.New("trainer already has a conflicting booking")

	// ErrTrainerNotFound возвращается, когда расписание тренера не найдено
	ErrTrainerNotFound = errors.New("trainer schedule not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("scheduleservice client: invalid response")
)

package create_appointment

import "errors"

// Ошибки валидации заявки. Порядок проверок фиксирован - клиенту
// сообщается первое нарушенное правило
var (
	// ErrMissingTrainer возвращается, когда не указан тренер
	ErrMissingTrainer = errors.New("create_appointment: trainer is required")

	// ErrMissingDate возвращается, когда не указана дата
	ErrMissingDate = errors.New("create_appointment: date is required")

	// ErrMissingStartTime возвращается, когда не указано или некорректно время начала
	ErrMissingStartTime = errors.New("create_appointment: start time is required")

	// ErrMissingEndTime возвращается, когда не указано или некорректно время окончания
	ErrMissingEndTime = errors.New("create_appointment: end time is required")

	// ErrMissingTrainee возвращается, когда клиент не указан и не определяется из сессии
	ErrMissingTrainee = errors.New("create_appointment: trainee is required")

	// ErrEndBeforeStart возвращается, когда время окончания не позже времени начала
	ErrEndBeforeStart = errors.New("create_appointment: end time must be after start time")

	// ErrSessionTooShort возвращается, когда сессия короче минимальной длительности
	ErrSessionTooShort = errors.New("create_appointment: session is too short")

	// ErrSessionTooLong возвращается, когда сессия длиннее максимальной длительности
	ErrSessionTooLong = errors.New("create_appointment: session is too long")

	// ErrBeforeOpening возвращается, когда сессия начинается до открытия зала
	ErrBeforeOpening = errors.New("create_appointment: session starts before opening time")

	// ErrAfterClosing возвращается, когда сессия заканчивается после закрытия зала
	ErrAfterClosing = errors.New("create_appointment: session ends after closing time")

	// ErrDateInPast возвращается, когда дата раньше сегодняшней
	ErrDateInPast = errors.New("create_appointment: date is in the past")
)

// Ошибки взаимодействия с коллабораторами
var (
	// ErrTrainerNotFound возвращается, когда тренер не найден в StaffService
	ErrTrainerNotFound = errors.New("create_appointment: trainer not found")

	// ErrTrainerInactive возвращается, когда тренер больше не работает
	ErrTrainerInactive = errors.New("create_appointment: trainer is not active")

	// ErrTraineeNotFound возвращается, когда клиент не найден в MemberService
	ErrTraineeNotFound = errors.New("create_appointment: trainee not found")

	// ErrConflictingBooking возвращается, когда ScheduleService сообщил
	// о пересечении с другой записью тренера. Алгоритм проверки - на его стороне
	ErrConflictingBooking = errors.New("create_appointment: trainer already has a booking at this time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

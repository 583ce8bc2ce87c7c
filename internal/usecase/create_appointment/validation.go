package create_appointment

import (
	"time"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
	"github.com/fitlane/GMS-AppointmentService/pkg/types"
)

// validateRequest валидирует заявку на запись
//
// Проверки выполняются в фиксированном порядке, возвращается первое
// нарушенное правило. Поздние проверки полагаются на то, что ранние
// уже прошли (например, проверка длительности - на корректность времён).
// Чистая функция: текущее время передается параметром, никакого I/O
func validateRequest(req *Request, now time.Time) error {
	if req.TrainerID == "" {
		return ErrMissingTrainer
	}

	if req.Date.IsZero() {
		return ErrMissingDate
	}

	if req.StartTime.IsZero() {
		return ErrMissingStartTime
	}

	if req.EndTime.IsZero() {
		return ErrMissingEndTime
	}

	if req.resolveTrainee() == "" {
		return ErrMissingTrainee
	}

	// Переводим времена в минуты с полуночи
	// Некорректный формат трактуется как отсутствие значения
	startMinutes, err := req.StartTime.MinutesSinceMidnight()
	if err != nil {
		return ErrMissingStartTime
	}

	endMinutes, err := req.EndTime.MinutesSinceMidnight()
	if err != nil {
		return ErrMissingEndTime
	}

	if startMinutes >= endMinutes {
		return ErrEndBeforeStart
	}

	duration := endMinutes - startMinutes

	if duration < domain.MinSessionMinutes {
		return ErrSessionTooShort
	}

	if duration > domain.MaxSessionMinutes {
		return ErrSessionTooLong
	}

	if startMinutes < domain.OpeningMinutes {
		return ErrBeforeOpening
	}

	if endMinutes > domain.ClosingMinutes {
		return ErrAfterClosing
	}

	// Сравниваем только календарные даты, время суток не учитывается
	if isDateInPast(req.Date, now) {
		return ErrDateInPast
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// sessionMinutes возвращает длительность сессии в минутах
// Предполагает, что времена уже прошли валидацию
func sessionMinutes(startTime, endTime types.TimeString) int {
	start, err := startTime.MinutesSinceMidnight()
	if err != nil {
		return 0
	}
	end, err := endTime.MinutesSinceMidnight()
	if err != nil {
		return 0
	}
	return end - start
}

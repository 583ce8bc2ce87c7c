package create_appointment

import (
	"time"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
	"github.com/fitlane/GMS-AppointmentService/pkg/types"
)

// Request модель заявки на запись к тренеру
type Request struct {
	Actor     domain.Actor     // Кто создает запись
	TrainerID string           // ID тренера
	TraineeID string           // ID клиента; для роли member по умолчанию - сам актор
	Date      time.Time        // Дата тренировки (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	EndTime   types.TimeString // Время окончания (например, "11:00")
}

// resolveTrainee возвращает ID клиента с учётом дефолта из сессии
func (r *Request) resolveTrainee() string {
	if r.TraineeID != "" {
		return r.TraineeID
	}
	if r.Actor.Role == domain.RoleMember {
		return r.Actor.ID
	}
	return ""
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64            // ID созданной записи
	TrainerID string           // ID тренера
	TraineeID string           // ID клиента
	Date      time.Time        // Дата тренировки
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время окончания
	Status    string           // Статус записи (всегда pending при создании)
	Version   int64            // Версия записи

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

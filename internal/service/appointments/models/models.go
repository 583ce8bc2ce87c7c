package models

import (
	"errors"
	"time"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidRole возвращается при некорректной роли
	ErrInvalidRole = errors.New("invalid actor role")
)

// Request модели

// TransitionRequest запрос на смену статуса записи
type TransitionRequest struct {
	ActorID      string  `json:"actorId"`
	ActorRole    string  `json:"actorRole"`
	TargetStatus string  `json:"targetStatus"`
	Reason       *string `json:"reason,omitempty"` // Причина отмены (опционально)
}

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	Actor   domain.Actor
	Page    domain.PageRequest
	Status  *string    // Фильтр по статусу (опционально)
	Date    *time.Time // Фильтр по дате (опционально)
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	TrainerID string `json:"trainerId"`
	TraineeID string `json:"traineeId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	Status    string `json:"status"`
	Version   int64  `json:"version"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusTallyResponse счётчики записей по статусам
type StatusTallyResponse struct {
	Pending   int `json:"pending"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// AppointmentPageResponse страница записей со счётчиками
// Счётчики считаются по всей видимой актору коллекции, не по странице
type AppointmentPageResponse struct {
	Items      []AppointmentResponse `json:"items"`
	TotalCount int                   `json:"totalCount"`
	Page       int                   `json:"pageNumber"`
	PerPage    int                   `json:"pageSize"`
	Tally      StatusTallyResponse   `json:"tally"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		TrainerID:          a.TrainerID,
		TraineeID:          a.TraineeID,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		EndTime:            a.EndTime.String(),
		Status:             string(a.Status),
		Version:            a.Version,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainTally конвертирует счётчики статусов в DTO
func FromDomainTally(t domain.StatusTally) StatusTallyResponse {
	return StatusTallyResponse{
		Pending:   t.Pending,
		Accepted:  t.Accepted,
		Rejected:  t.Rejected,
		Completed: t.Completed,
		Cancelled: t.Cancelled,
	}
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	for _, valid := range domain.AllStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// ToDomainRole конвертирует строку в domain.Role с валидацией
func ToDomainRole(role string) (domain.Role, error) {
	r := domain.Role(role)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

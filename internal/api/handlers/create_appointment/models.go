package create_appointment

import (
	"time"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
	createAppointment "github.com/fitlane/GMS-AppointmentService/internal/usecase/create_appointment"
	"github.com/fitlane/GMS-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	TrainerID string `json:"trainerId"`
	TraineeID string `json:"traineeId,omitempty"` // Для роли member по умолчанию - сам актор
	Date      string `json:"date"`                // "2025-10-15"
	StartTime string `json:"startTime"`           // "10:00"
	EndTime   string `json:"endTime"`             // "11:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64  `json:"id"`
	TrainerID string `json:"trainerId"`
	TraineeID string `json:"traineeId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	Version   int64  `json:"version"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые date/startTime/endTime не считаются ошибкой парсинга - их
// отсутствие валидирует use case, чтобы вернуть точный код нарушения
func (r *CreateAppointmentRequest) ToUseCaseRequest(actor domain.Actor) (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		Actor:     actor,
		TrainerID: r.TrainerID,
		TraineeID: r.TraineeID,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if r.StartTime != "" {
		startTime, err := types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = startTime
	}

	if r.EndTime != "" {
		endTime, err := types.NewTimeStringFromString(r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		TrainerID: resp.TrainerID,
		TraineeID: resp.TraineeID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Status:    resp.Status,
		Version:   resp.Version,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

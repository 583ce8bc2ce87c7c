package transition_appointment

import (
	"github.com/fitlane/GMS-AppointmentService/internal/domain"
	"github.com/fitlane/GMS-AppointmentService/internal/service/appointments/models"
)

// TransitionRequest HTTP request model
// Актор берётся из заголовков аутентификации, в теле - только целевой
// статус и опциональная причина отмены
type TransitionRequest struct {
	TargetStatus string  `json:"targetStatus"`
	Reason       *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *TransitionRequest) ToServiceRequest(actor domain.Actor) *models.TransitionRequest {
	return &models.TransitionRequest{
		ActorID:      actor.ID,
		ActorRole:    string(actor.Role),
		TargetStatus: r.TargetStatus,
		Reason:       r.Reason,
	}
}

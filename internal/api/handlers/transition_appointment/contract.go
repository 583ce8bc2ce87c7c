package transition_appointment

import (
	"context"

	"github.com/fitlane/GMS-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	Transition(ctx context.Context, id int64, req *models.TransitionRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

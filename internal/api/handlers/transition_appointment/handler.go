package transition_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fitlane/GMS-AppointmentService/internal/api/handlers"
	"github.com/fitlane/GMS-AppointmentService/internal/api/middleware"
	"github.com/fitlane/GMS-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "некорректный целевой статус"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgIllegalTransition    = "переход в этот статус невозможен"
	msgConflict             = "запись уже изменена, обновите данные"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Error("PATCH /appointments/{id}/status - No actor in context")
		handlers.RespondInternalError(w)
		return
	}

	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Декодируем body
	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Выполняем переход
	appointment, err := h.service.Transition(r.Context(), appointmentID, req.ToServiceRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrForbidden):
			h.logger.Warn("PATCH /appointments/{id}/status - Access denied: appointment_id=%d, actor=%s role=%s",
				appointmentID, actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrIllegalTransition):
			// Недостижимый переход - ошибка логики клиента, логируем как ERROR
			h.logger.Error("PATCH /appointments/{id}/status - Illegal transition attempted: appointment_id=%d, target=%s, actor=%s role=%s",
				appointmentID, req.TargetStatus, actor.ID, actor.Role)
			handlers.RespondBadRequest(w, msgIllegalTransition)

		case errors.Is(err, appointments.ErrConflict):
			h.logger.Warn("PATCH /appointments/{id}/status - Concurrent modification: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, appointments.ErrInvalidStatus),
			errors.Is(err, appointments.ErrInvalidRole),
			errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to transition: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Appointment transitioned successfully: appointment_id=%d, status=%s",
		appointmentID, appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}

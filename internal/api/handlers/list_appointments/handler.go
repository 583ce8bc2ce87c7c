package list_appointments

import (
	"errors"
	"net/http"

	"github.com/fitlane/GMS-AppointmentService/internal/api/handlers"
	"github.com/fitlane/GMS-AppointmentService/internal/api/middleware"
	"github.com/fitlane/GMS-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidQueryParams = "некорректные параметры запроса"
	msgInvalidStatus      = "некорректный статус"
	msgInvalidPage        = "номер страницы и размер страницы должны быть положительными"
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

// Handle GET /api/v1/appointments
// Query параметры: page, perPage, status, date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /appointments - No actor in context")
		handlers.RespondInternalError(w)
		return
	}

	query := r.URL.Query()

	req, err := ToServiceRequest(
		actor,
		query.Get("page"),
		query.Get("perPage"),
		query.Get("status"),
		query.Get("date"),
	)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	page, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("GET /appointments - Invalid status filter: %s", query.Get("status"))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidInput), errors.Is(err, appointments.ErrInvalidRole):
			h.logger.Warn("GET /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPage)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: actor=%s, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Returned %d of %d appointments for actor=%s role=%s",
		len(page.Items), page.TotalCount, actor.ID, actor.Role)
	handlers.RespondJSON(w, http.StatusOK, page)
}

package create_appointment

import (
	"errors"
	"net/http"

	"github.com/fitlane/GMS-AppointmentService/internal/api/handlers"
	"github.com/fitlane/GMS-AppointmentService/internal/api/middleware"
	createAppointment "github.com/fitlane/GMS-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgMissingTrainer     = "не указан тренер"
	msgMissingDate        = "не указана дата тренировки"
	msgMissingStartTime   = "не указано время начала"
	msgMissingEndTime     = "не указано время окончания"
	msgMissingTrainee     = "не указан клиент"
	msgEndBeforeStart     = "время окончания должно быть позже времени начала"
	msgSessionTooShort    = "тренировка короче минимальной длительности (20 минут)"
	msgSessionTooLong     = "тренировка длиннее максимальной длительности (2 часа)"
	msgBeforeOpening      = "зал открывается в 08:00"
	msgAfterClosing       = "зал закрывается в 21:00"
	msgDateInPast         = "дата тренировки уже прошла"
	msgTrainerNotFound    = "тренер не найден"
	msgTrainerInactive    = "тренер больше не работает"
	msgTraineeNotFound    = "клиент не найден"
	msgConflictingBooking = "у тренера уже есть запись на это время"
)

// violationMessages маппинг нарушений валидации на сообщения для клиента
var violationMessages = []struct {
	err error
	msg string
}{
	{createAppointment.ErrMissingTrainer, msgMissingTrainer},
	{createAppointment.ErrMissingDate, msgMissingDate},
	{createAppointment.ErrMissingStartTime, msgMissingStartTime},
	{createAppointment.ErrMissingEndTime, msgMissingEndTime},
	{createAppointment.ErrMissingTrainee, msgMissingTrainee},
	{createAppointment.ErrEndBeforeStart, msgEndBeforeStart},
	{createAppointment.ErrSessionTooShort, msgSessionTooShort},
	{createAppointment.ErrSessionTooLong, msgSessionTooLong},
	{createAppointment.ErrBeforeOpening, msgBeforeOpening},
	{createAppointment.ErrAfterClosing, msgAfterClosing},
	{createAppointment.ErrDateInPast, msgDateInPast},
}

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /appointments - No actor in context")
		handlers.RespondInternalError(w)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Нарушения валидации - всегда 400 с конкретным сообщением
		for _, v := range violationMessages {
			if errors.Is(err, v.err) {
				h.logger.Warn("POST /appointments - Validation failed: actor=%s, error=%v", actor.ID, err)
				handlers.RespondBadRequest(w, v.msg)
				return
			}
		}

		switch {
		case errors.Is(err, createAppointment.ErrConflictingBooking):
			h.logger.Warn("POST /appointments - Conflicting booking: trainer=%s", req.TrainerID)
			handlers.RespondConflict(w, msgConflictingBooking)

		case errors.Is(err, createAppointment.ErrTrainerNotFound):
			h.logger.Warn("POST /appointments - Trainer not found: trainer=%s", req.TrainerID)
			handlers.RespondNotFound(w, msgTrainerNotFound)

		case errors.Is(err, createAppointment.ErrTrainerInactive):
			h.logger.Warn("POST /appointments - Trainer inactive: trainer=%s", req.TrainerID)
			handlers.RespondBadRequest(w, msgTrainerInactive)

		case errors.Is(err, createAppointment.ErrTraineeNotFound):
			h.logger.Warn("POST /appointments - Trainee not found: actor=%s", actor.ID)
			handlers.RespondNotFound(w, msgTraineeNotFound)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: actor=%s, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, trainer=%s, trainee=%s",
		result.ID, result.TrainerID, result.TraineeID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

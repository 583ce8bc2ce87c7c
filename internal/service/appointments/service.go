package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
	appointmentRepo "github.com/fitlane/GMS-AppointmentService/internal/infra/storage/appointment"
	"github.com/fitlane/GMS-AppointmentService/internal/service/appointments/models"
	"github.com/fitlane/GMS-AppointmentService/pkg/ptr"
)

// Service сервис для работы с записями на тренировки
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - запись видят записанный клиент, назначенный
// тренер, менеджер и администратор
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for actor=%s role=%s", id, actor.ID, actor.Role)

	appt, err := s.fetch(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if !s.actorMaySee(appt, actor) {
		s.logger.Warn("GetByID: access denied for actor=%s role=%s to appointment id=%d", actor.ID, actor.Role, id)
		return nil, ErrForbidden
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// Transition переводит запись в целевой статус от имени актора
//
// Решение принимается по снимку записи на момент чтения; одновременное
// изменение другим актором обнаруживается проверкой версии в хранилище
// и возвращается как ErrConflict - вызывающая сторона должна перечитать
// запись, а не повторять переход вслепую
func (s *Service) Transition(ctx context.Context, id int64, req *models.TransitionRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Transition: appointment id=%d to status=%s by actor=%s role=%s",
		id, req.TargetStatus, req.ActorID, req.ActorRole)

	// Валидируем и конвертируем входные данные
	target, err := models.ToDomainStatus(req.TargetStatus)
	if err != nil {
		s.logger.Warn("Transition: invalid status=%s for appointment id=%d", req.TargetStatus, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	role, err := models.ToDomainRole(req.ActorRole)
	if err != nil {
		s.logger.Warn("Transition: invalid role=%s for appointment id=%d", req.ActorRole, id)
		return nil, fmt.Errorf("%w: invalid role", ErrInvalidRole)
	}

	if req.ActorID == "" {
		return nil, fmt.Errorf("%w: actorId is required", ErrInvalidInput)
	}

	reason := ""
	if req.Reason != nil {
		if len(*req.Reason) > domain.MaxCancellationReasonLength {
			return nil, fmt.Errorf("%w: reason is too long", ErrInvalidInput)
		}
		reason = *req.Reason
	}

	actor := domain.Actor{ID: req.ActorID, Role: role}

	// Получаем свежий снимок записи
	appt, err := s.fetch(ctx, "Transition", id)
	if err != nil {
		return nil, err
	}

	// Применяем таблицу переходов
	if err := decideTransition(appt, target, actor); err != nil {
		s.logger.Warn("Transition: %s -> %s rejected for actor=%s role=%s on appointment id=%d: %v",
			appt.Status, target, actor.ID, actor.Role, id, err)
		return nil, err
	}

	// Сохраняем новый статус с проверкой версии
	if target == domain.StatusCancelled {
		err = s.appointmentRepo.Cancel(ctx, id, appt.Version, reason)
	} else {
		err = s.appointmentRepo.UpdateStatus(ctx, id, target, appt.Version)
	}

	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("Transition: appointment id=%d not found during update", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrVersionConflict):
			s.logger.Warn("Transition: version conflict on appointment id=%d (version=%d)", id, appt.Version)
			return nil, ErrConflict
		default:
			s.logger.Error("Transition: repository error for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
		}
	}

	// Перечитываем запись для ответа
	updated, err := s.fetch(ctx, "Transition", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Transition: appointment id=%d is now %s", id, updated.Status)
	return models.FromDomainAppointment(updated), nil
}

// List возвращает страницу записей, видимых актору
//
// Скоупинг по роли, счётчики статусов и пагинация считаются по одной
// и той же коллекции; порядок записей из хранилища сохраняется
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentPageResponse, error) {
	s.logger.Info("List: actor=%s role=%s, page=%d, perPage=%d",
		req.Actor.ID, req.Actor.Role, req.Page.Page, req.Page.PerPage)

	if !req.Actor.Role.IsValid() {
		return nil, fmt.Errorf("%w: invalid role", ErrInvalidRole)
	}
	if req.Page.Page < 1 || req.Page.PerPage < 1 {
		return nil, fmt.Errorf("%w: page and perPage must be positive", ErrInvalidInput)
	}

	// Готовим фильтр хранилища: терминальные статусы нужны для счётчиков
	filter := domain.AppointmentsFilter{
		IncludeInactive: true,
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
		}
		filter.Status = ptr.Ptr(status)
	}

	if req.Date != nil {
		filter.StartDate = req.Date
		filter.EndDate = req.Date
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	items, total, tally := projectPage(appointments, req.Actor, req.Page)

	responses := make([]models.AppointmentResponse, len(items))
	for i, appt := range items {
		responses[i] = *models.FromDomainAppointment(appt)
	}

	s.logger.Info("List: returning %d of %d appointments for actor=%s role=%s",
		len(responses), total, req.Actor.ID, req.Actor.Role)

	return &models.AppointmentPageResponse{
		Items:      responses,
		TotalCount: total,
		Page:       req.Page.Page,
		PerPage:    req.Page.PerPage,
		Tally:      models.FromDomainTally(tally),
	}, nil
}

// Вспомогательные методы

// fetch получает запись с маппингом ошибок хранилища
func (s *Service) fetch(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

// actorMaySee проверяет, что актор имеет доступ к записи
func (s *Service) actorMaySee(appt *domain.Appointment, actor domain.Actor) bool {
	if actor.Role.IsStaff() {
		return true
	}
	if actor.Role == domain.RoleTrainer && appt.TrainerID == actor.ID {
		return true
	}
	if actor.Role == domain.RoleMember && appt.TraineeID == actor.ID {
		return true
	}
	return false
}

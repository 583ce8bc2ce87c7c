package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
	memberClient "github.com/fitlane/GMS-AppointmentService/internal/integrations/memberservice"
	scheduleClient "github.com/fitlane/GMS-AppointmentService/internal/integrations/scheduleservice"
	staffClient "github.com/fitlane/GMS-AppointmentService/internal/integrations/staffservice"
)

// UseCase use case для создания записи на тренировку
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffClient     StaffServiceClient
	memberClient    MemberServiceClient
	scheduleClient  ScheduleServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffClient StaffServiceClient,
	memberClient MemberServiceClient,
	scheduleClient ScheduleServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffClient:     staffClient,
		memberClient:    memberClient,
		scheduleClient:  scheduleClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Заявка проходит валидацию, затем проверку коллабораторов; запись
// создается в статусе pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: actor=%s role=%s, trainer=%s, date=%s, time=%s-%s",
		req.Actor.ID, req.Actor.Role, req.TrainerID,
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация заявки (первое нарушенное правило)
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	traineeID := req.resolveTrainee()

	// 3. Получаем тренера
	trainer, err := uc.staffClient.GetTrainer(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, staffClient.ErrTrainerNotFound) {
			uc.logger.Warn("CreateAppointment: trainer id=%s not found", req.TrainerID)
			return nil, ErrTrainerNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get trainer id=%s: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
	}

	if !trainer.IsActive {
		uc.logger.Warn("CreateAppointment: trainer id=%s is not active", req.TrainerID)
		return nil, ErrTrainerInactive
	}

	// 4. Получаем клиента
	if _, err := uc.memberClient.GetMember(ctx, traineeID); err != nil {
		if errors.Is(err, memberClient.ErrMemberNotFound) {
			uc.logger.Warn("CreateAppointment: trainee id=%s not found", traineeID)
			return nil, ErrTraineeNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get trainee id=%s: %v", traineeID, err)
		return nil, fmt.Errorf("%w: failed to get trainee: %v", ErrInternal, err)
	}

	// 5. Проверяем занятость тренера через ScheduleService
	// Результат принимается как есть, без локальной перепроверки
	if err := uc.scheduleClient.CheckTrainerConflict(ctx, req.TrainerID, req.Date, req.StartTime, req.EndTime); err != nil {
		if errors.Is(err, scheduleClient.ErrConflictingBooking) {
			uc.logger.Warn("CreateAppointment: trainer id=%s has a conflicting booking on %s %s-%s",
				req.TrainerID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return nil, ErrConflictingBooking
		}
		uc.logger.Error("CreateAppointment: conflict check failed for trainer id=%s: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Создаем запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appointment := &domain.Appointment{
			TrainerID: req.TrainerID,
			TraineeID: traineeID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    domain.StatusPending,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d (duration=%d min)",
		result.ID, sessionMinutes(result.StartTime, result.EndTime))

	// Конвертируем в response
	return &Response{
		ID:        result.ID,
		TrainerID: result.TrainerID,
		TraineeID: result.TraineeID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		Version:   result.Version,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

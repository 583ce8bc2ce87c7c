package create_appointment

import (
	"context"
	"time"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
	"github.com/fitlane/GMS-AppointmentService/internal/integrations/memberservice"
	"github.com/fitlane/GMS-AppointmentService/internal/integrations/staffservice"
	"github.com/fitlane/GMS-AppointmentService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetTrainer(ctx context.Context, trainerID string) (*staffservice.Trainer, error)
}

// MemberServiceClient интерфейс клиента для MemberService
type MemberServiceClient interface {
	GetMember(ctx context.Context, memberID string) (*memberservice.Member, error)
}

// ScheduleServiceClient интерфейс клиента для ScheduleService
// Проверка занятости тренера полностью на его стороне
type ScheduleServiceClient interface {
	CheckTrainerConflict(ctx context.Context, trainerID string, date time.Time, startTime, endTime types.TimeString) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

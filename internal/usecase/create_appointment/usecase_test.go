package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
	"github.com/fitlane/GMS-AppointmentService/internal/integrations/memberservice"
	"github.com/fitlane/GMS-AppointmentService/internal/integrations/scheduleservice"
	"github.com/fitlane/GMS-AppointmentService/internal/integrations/staffservice"
	"github.com/fitlane/GMS-AppointmentService/pkg/types"
)

// Моки

type fakeRepository struct {
	created *domain.Appointment
	err     error
}

func (f *fakeRepository) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	copied := *appt
	copied.ID = 42
	copied.Version = 1
	copied.CreatedAt = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	copied.UpdatedAt = copied.CreatedAt
	f.created = &copied
	return &copied, nil
}

type fakeStaffClient struct {
	trainer *staffservice.Trainer
	err     error
}

func (f *fakeStaffClient) GetTrainer(_ context.Context, _ string) (*staffservice.Trainer, error) {
	return f.trainer, f.err
}

type fakeMemberClient struct {
	member *memberservice.Member
	err    error

	requestedID string
}

func (f *fakeMemberClient) GetMember(_ context.Context, memberID string) (*memberservice.Member, error) {
	f.requestedID = memberID
	return f.member, f.err
}

type fakeScheduleClient struct {
	err error
}

func (f *fakeScheduleClient) CheckTrainerConflict(_ context.Context, _ string, _ time.Time, _, _ types.TimeString) error {
	return f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type useCaseFixture struct {
	uc       *UseCase
	repo     *fakeRepository
	staff    *fakeStaffClient
	member   *fakeMemberClient
	schedule *fakeScheduleClient
}

func newFixture() *useCaseFixture {
	repo := &fakeRepository{}
	staff := &fakeStaffClient{
		trainer: &staffservice.Trainer{ID: "trainer-1", FullName: "Иван Петров", IsActive: true},
	}
	member := &fakeMemberClient{
		member: &memberservice.Member{ID: "member-1", FullName: "Анна Смирнова"},
	}
	schedule := &fakeScheduleClient{}

	uc := NewUseCase(repo, staff, member, schedule, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}

	return &useCaseFixture{uc: uc, repo: repo, staff: staff, member: member, schedule: schedule}
}

// Тесты

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, int64(1), resp.Version)
	require.NotNil(t, f.repo.created)
	assert.Equal(t, domain.StatusPending, f.repo.created.Status)
}

func TestUseCase_Execute_TraineeDefaultsToActor(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.TraineeID = ""

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "member-1", resp.TraineeID)
	assert.Equal(t, "member-1", f.member.requestedID)
}

func TestUseCase_Execute_ValidationFailure(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartTime = "10:00"
	req.EndTime = "10:15"

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrSessionTooShort)
	assert.Nil(t, f.repo.created)
}

func TestUseCase_Execute_TrainerNotFound(t *testing.T) {
	f := newFixture()
	f.staff.trainer = nil
	f.staff.err = staffservice.ErrTrainerNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestUseCase_Execute_TrainerInactive(t *testing.T) {
	f := newFixture()
	f.staff.trainer.IsActive = false

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrTrainerInactive)
	assert.Nil(t, f.repo.created)
}

func TestUseCase_Execute_TraineeNotFound(t *testing.T) {
	f := newFixture()
	f.member.member = nil
	f.member.err = memberservice.ErrMemberNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrTraineeNotFound)
}

func TestUseCase_Execute_ConflictingBooking(t *testing.T) {
	f := newFixture()
	f.schedule.err = scheduleservice.ErrConflictingBooking

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrConflictingBooking)
	assert.Nil(t, f.repo.created)
}

func TestUseCase_Execute_ScheduleServiceUnavailable(t *testing.T) {
	f := newFixture()
	f.schedule.err = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	f := newFixture()
	f.repo.err = errors.New("pq: connection reset")

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrInternal)
}

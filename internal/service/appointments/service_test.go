package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
	appointmentRepo "github.com/fitlane/GMS-AppointmentService/internal/infra/storage/appointment"
	"github.com/fitlane/GMS-AppointmentService/internal/service/appointments/models"
	"github.com/fitlane/GMS-AppointmentService/pkg/ptr"
	"github.com/fitlane/GMS-AppointmentService/pkg/types"
)

// Моки

type fakeRepository struct {
	appointments map[int64]*domain.Appointment
	listResult   []*domain.Appointment
	listErr      error
	updateErr    error
	cancelErr    error

	lastFilter        domain.AppointmentsFilter
	updateStatusCalls int
	cancelCalls       int
	lastVersion       int64
	lastReason        string
}

func newFakeRepository(appointments ...*domain.Appointment) *fakeRepository {
	repo := &fakeRepository{appointments: make(map[int64]*domain.Appointment)}
	for _, appt := range appointments {
		repo.appointments[appt.ID] = appt
	}
	return repo
}

func (f *fakeRepository) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeRepository) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.listResult, f.listErr
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus, expectedVersion int64) error {
	f.updateStatusCalls++
	f.lastVersion = expectedVersion
	if f.updateErr != nil {
		return f.updateErr
	}
	f.appointments[id].Status = status
	f.appointments[id].Version++
	return nil
}

func (f *fakeRepository) Cancel(_ context.Context, id int64, expectedVersion int64, reason string) error {
	f.cancelCalls++
	f.lastVersion = expectedVersion
	f.lastReason = reason
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.appointments[id].Status = domain.StatusCancelled
	f.appointments[id].Version++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:        42,
		TrainerID: "trainer-1",
		TraineeID: "member-1",
		Date:      time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Status:    domain.StatusPending,
		Version:   3,
	}
}

// Тесты GetByID

func TestService_GetByID(t *testing.T) {
	repo := newFakeRepository(testAppointment())
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42, domain.Actor{ID: "member-1", Role: domain.RoleMember})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-10-20", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepository(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 99, domain.Actor{ID: "mgr-1", Role: domain.RoleManager})

	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_GetByID_Forbidden(t *testing.T) {
	repo := newFakeRepository(testAppointment())
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, domain.Actor{ID: "member-2", Role: domain.RoleMember})

	require.ErrorIs(t, err, ErrForbidden)
}

// Тесты Transition

func TestService_Transition_Accept(t *testing.T) {
	repo := newFakeRepository(testAppointment())
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Transition(context.Background(), 42, &models.TransitionRequest{
		ActorID:      "trainer-1",
		ActorRole:    "trainer",
		TargetStatus: "accepted",
	})

	require.NoError(t, err)
	assert.Equal(t, "accepted", resp.Status)
	assert.Equal(t, 1, repo.updateStatusCalls)
	assert.Equal(t, 0, repo.cancelCalls)
	assert.Equal(t, int64(3), repo.lastVersion)
	assert.Equal(t, int64(4), resp.Version)
}

func TestService_Transition_CancelUsesReason(t *testing.T) {
	repo := newFakeRepository(testAppointment())
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Transition(context.Background(), 42, &models.TransitionRequest{
		ActorID:      "member-1",
		ActorRole:    "member",
		TargetStatus: "cancelled",
		Reason:       ptr.Ptr("семейные обстоятельства"),
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, 1, repo.cancelCalls)
	assert.Equal(t, 0, repo.updateStatusCalls)
	assert.Equal(t, "семейные обстоятельства", repo.lastReason)
}

func TestService_Transition_VersionConflict(t *testing.T) {
	repo := newFakeRepository(testAppointment())
	repo.updateErr = appointmentRepo.ErrVersionConflict
	svc := NewService(repo, nopLogger{})

	_, err := svc.Transition(context.Background(), 42, &models.TransitionRequest{
		ActorID:      "trainer-1",
		ActorRole:    "trainer",
		TargetStatus: "accepted",
	})

	require.ErrorIs(t, err, ErrConflict)
}

func TestService_Transition_NotFound(t *testing.T) {
	svc := NewService(newFakeRepository(), nopLogger{})

	_, err := svc.Transition(context.Background(), 99, &models.TransitionRequest{
		ActorID:      "trainer-1",
		ActorRole:    "trainer",
		TargetStatus: "accepted",
	})

	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Transition_IllegalTransition(t *testing.T) {
	repo := newFakeRepository(testAppointment())
	svc := NewService(repo, nopLogger{})

	_, err := svc.Transition(context.Background(), 42, &models.TransitionRequest{
		ActorID:      "trainer-1",
		ActorRole:    "trainer",
		TargetStatus: "completed",
	})

	require.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, 0, repo.updateStatusCalls)
}

func TestService_Transition_InvalidInputs(t *testing.T) {
	repo := newFakeRepository(testAppointment())
	svc := NewService(repo, nopLogger{})

	tests := []struct {
		name    string
		req     *models.TransitionRequest
		wantErr error
	}{
		{
			name:    "unknown status",
			req:     &models.TransitionRequest{ActorID: "trainer-1", ActorRole: "trainer", TargetStatus: "paused"},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "unknown role",
			req:     &models.TransitionRequest{ActorID: "u-1", ActorRole: "janitor", TargetStatus: "accepted"},
			wantErr: ErrInvalidRole,
		},
		{
			name:    "empty actor id",
			req:     &models.TransitionRequest{ActorID: "", ActorRole: "trainer", TargetStatus: "accepted"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Transition(context.Background(), 42, tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Тесты List

func TestService_List(t *testing.T) {
	repo := newFakeRepository()
	repo.listResult = []*domain.Appointment{
		makeAppointment(1, "trainer-1", "member-1", domain.StatusPending),
		makeAppointment(2, "trainer-1", "member-2", domain.StatusAccepted),
		makeAppointment(3, "trainer-2", "member-1", domain.StatusCompleted),
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Actor: domain.Actor{ID: "trainer-1", Role: domain.RoleTrainer},
		Page:  domain.PageRequest{Page: 1, PerPage: 10},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, 1, resp.Tally.Pending)
	assert.Equal(t, 1, resp.Tally.Accepted)
	// Терминальные статусы включены в выборку, чтобы счётчики были полными
	assert.True(t, repo.lastFilter.IncludeInactive)
}

func TestService_List_StatusAndDateFilter(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nopLogger{})
	date := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Actor:  domain.Actor{ID: "mgr-1", Role: domain.RoleManager},
		Page:   domain.PageRequest{Page: 1, PerPage: 10},
		Status: ptr.Ptr("accepted"),
		Date:   &date,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusAccepted, *repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.StartDate)
	assert.Equal(t, date, *repo.lastFilter.StartDate)
	require.NotNil(t, repo.lastFilter.EndDate)
	assert.Equal(t, date, *repo.lastFilter.EndDate)
}

func TestService_List_InvalidPagination(t *testing.T) {
	svc := NewService(newFakeRepository(), nopLogger{})

	tests := []struct {
		name string
		page domain.PageRequest
	}{
		{"zero page", domain.PageRequest{Page: 0, PerPage: 10}},
		{"negative page", domain.PageRequest{Page: -1, PerPage: 10}},
		{"zero perPage", domain.PageRequest{Page: 1, PerPage: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
				Actor: domain.Actor{ID: "mgr-1", Role: domain.RoleManager},
				Page:  tt.page,
			})
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeRepository(), nopLogger{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Actor:  domain.Actor{ID: "mgr-1", Role: domain.RoleManager},
		Page:   domain.PageRequest{Page: 1, PerPage: 10},
		Status: ptr.Ptr("archived"),
	})

	require.ErrorIs(t, err, ErrInvalidStatus)
}

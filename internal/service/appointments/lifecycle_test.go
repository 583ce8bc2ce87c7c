package appointments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
)

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:        1,
		TrainerID: "trainer-1",
		TraineeID: "member-1",
		Status:    domain.StatusPending,
		Version:   1,
	}
}

func TestDecideTransition_Allowed(t *testing.T) {
	tests := []struct {
		name   string
		status domain.AppointmentStatus
		target domain.AppointmentStatus
		actor  domain.Actor
	}{
		{
			name:   "assigned trainer accepts pending",
			status: domain.StatusPending,
			target: domain.StatusAccepted,
			actor:  domain.Actor{ID: "trainer-1", Role: domain.RoleTrainer},
		},
		{
			name:   "assigned trainer rejects pending",
			status: domain.StatusPending,
			target: domain.StatusRejected,
			actor:  domain.Actor{ID: "trainer-1", Role: domain.RoleTrainer},
		},
		{
			name:   "assigned trainer completes accepted",
			status: domain.StatusAccepted,
			target: domain.StatusCompleted,
			actor:  domain.Actor{ID: "trainer-1", Role: domain.RoleTrainer},
		},
		{
			name:   "booked member cancels pending",
			status: domain.StatusPending,
			target: domain.StatusCancelled,
			actor:  domain.Actor{ID: "member-1", Role: domain.RoleMember},
		},
		{
			name:   "booked member cancels accepted",
			status: domain.StatusAccepted,
			target: domain.StatusCancelled,
			actor:  domain.Actor{ID: "member-1", Role: domain.RoleMember},
		},
		{
			name:   "manager cancels pending",
			status: domain.StatusPending,
			target: domain.StatusCancelled,
			actor:  domain.Actor{ID: "mgr-1", Role: domain.RoleManager},
		},
		{
			name:   "receptionist cancels accepted",
			status: domain.StatusAccepted,
			target: domain.StatusCancelled,
			actor:  domain.Actor{ID: "rec-1", Role: domain.RoleReceptionist},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := pendingAppointment()
			appt.Status = tt.status

			require.NoError(t, decideTransition(appt, tt.target, tt.actor))
		})
	}
}

func TestDecideTransition_IllegalTransition(t *testing.T) {
	trainer := domain.Actor{ID: "trainer-1", Role: domain.RoleTrainer}

	tests := []struct {
		name   string
		status domain.AppointmentStatus
		target domain.AppointmentStatus
	}{
		{"pending to completed", domain.StatusPending, domain.StatusCompleted},
		{"accepted to accepted", domain.StatusAccepted, domain.StatusAccepted},
		{"accepted to rejected", domain.StatusAccepted, domain.StatusRejected},
		{"pending to pending", domain.StatusPending, domain.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := pendingAppointment()
			appt.Status = tt.status

			require.ErrorIs(t, decideTransition(appt, tt.target, trainer), ErrIllegalTransition)
		})
	}
}

// Из терминального статуса не ведёт ни один переход, независимо от роли
func TestDecideTransition_TerminalStates(t *testing.T) {
	actors := []domain.Actor{
		{ID: "trainer-1", Role: domain.RoleTrainer},
		{ID: "member-1", Role: domain.RoleMember},
		{ID: "mgr-1", Role: domain.RoleManager},
		{ID: "rec-1", Role: domain.RoleReceptionist},
	}

	for _, terminal := range domain.InactiveStatuses {
		for _, target := range domain.AllStatuses {
			for _, actor := range actors {
				appt := pendingAppointment()
				appt.Status = terminal

				err := decideTransition(appt, target, actor)
				require.ErrorIs(t, err, ErrIllegalTransition,
					"from=%s target=%s role=%s", terminal, target, actor.Role)
			}
		}
	}
}

func TestDecideTransition_Forbidden(t *testing.T) {
	tests := []struct {
		name   string
		status domain.AppointmentStatus
		target domain.AppointmentStatus
		actor  domain.Actor
	}{
		{
			name:   "unassigned trainer accepts",
			status: domain.StatusPending,
			target: domain.StatusAccepted,
			actor:  domain.Actor{ID: "trainer-2", Role: domain.RoleTrainer},
		},
		{
			name:   "unassigned trainer completes",
			status: domain.StatusAccepted,
			target: domain.StatusCompleted,
			actor:  domain.Actor{ID: "trainer-2", Role: domain.RoleTrainer},
		},
		{
			name:   "unrelated member cancels",
			status: domain.StatusPending,
			target: domain.StatusCancelled,
			actor:  domain.Actor{ID: "member-2", Role: domain.RoleMember},
		},
		{
			name:   "member accepts own appointment",
			status: domain.StatusPending,
			target: domain.StatusAccepted,
			actor:  domain.Actor{ID: "member-1", Role: domain.RoleMember},
		},
		{
			name:   "manager completes",
			status: domain.StatusAccepted,
			target: domain.StatusCompleted,
			actor:  domain.Actor{ID: "mgr-1", Role: domain.RoleManager},
		},
		{
			name:   "trainer cancels",
			status: domain.StatusPending,
			target: domain.StatusCancelled,
			actor:  domain.Actor{ID: "trainer-1", Role: domain.RoleTrainer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := pendingAppointment()
			appt.Status = tt.status

			require.ErrorIs(t, decideTransition(appt, tt.target, tt.actor), ErrForbidden)
		})
	}
}

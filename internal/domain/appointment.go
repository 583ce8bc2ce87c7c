package domain

import (
	"time"

	"github.com/fitlane/GMS-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of a training appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusAccepted  AppointmentStatus = "accepted"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a trainer/trainee session in the system
type Appointment struct {
	ID        int64
	TrainerID string
	TraineeID string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    AppointmentStatus

	// Version is incremented on every status change and drives the
	// optimistic-concurrency check in storage
	Version int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further transition is permitted from the current status
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusRejected ||
		a.Status == StatusCompleted ||
		a.Status == StatusCancelled
}

// IsActive returns true if the appointment still occupies the trainer's schedule
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusAccepted
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusAccepted
}

// AppointmentsFilter filters appointment collections in storage queries
type AppointmentsFilter struct {
	TrainerID       *string            // Filter by assigned trainer (optional)
	TraineeID       *string            // Filter by booked trainee (optional)
	StartDate       *time.Time         // Period start (optional)
	EndDate         *time.Time         // Period end (optional)
	Status          *AppointmentStatus // Filter by status (optional)
	IncludeInactive bool               // Include rejected/completed/cancelled appointments
}

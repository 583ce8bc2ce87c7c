package domain

// Session length policy
const (
	MinSessionMinutes = 20  // Minimum session length
	MaxSessionMinutes = 120 // Maximum session length
)

// Gym opening hours in minutes since midnight
const (
	OpeningMinutes = 8 * 60  // 08:00
	ClosingMinutes = 21 * 60 // 21:00
)

// Pagination defaults
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

const MaxCancellationReasonLength = 500

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список терминальных статусов
// Используется для фильтрации при подсчёте занятости тренера
var InactiveStatuses = []AppointmentStatus{
	StatusRejected,
	StatusCompleted,
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих расписание тренера
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusAccepted,
}

// AllStatuses все пять статусов жизненного цикла
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusAccepted,
	StatusRejected,
	StatusCompleted,
	StatusCancelled,
}

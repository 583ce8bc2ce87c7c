package staffservice

// Trainer модель тренера из StaffService
type Trainer struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Specialization string `json:"specialization"`
	IsActive       bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

package memberservice

// Member модель клиента зала из MemberService
type Member struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от MemberService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

package memberservice

import "errors"

var (
	// ErrMemberNotFound возвращается, когда клиент зала не найден
	ErrMemberNotFound = errors.New("member not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("memberservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("memberservice client: invalid response")
)

package domain

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

// AppError ошибка инфраструктуры с кодом, который уходит клиенту.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// ErrorCode отдаёт код для reply.Error.
func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

// WrapError оборачивает ошибку хранилища с доменным кодом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

package helpers

import "fmt"

// AppError is a controlled error carrying an HTTP status and a user-facing message.
type AppError struct {
	Status  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause when one exists.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError builds an AppError with a status and message.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// AsAppError converts any error into an AppError, defaulting to status 500.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	msg := defaultMessage
	if msg == "" {
		msg = "unexpected error"
	}
	return &AppError{Status: 500, Message: msg, Err: err}
}
